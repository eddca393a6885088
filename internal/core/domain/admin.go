package domain

import "time"

// AdminRole holds the single privileged identity tracked by access
// control. It is unrelated to campaign ownership.
type AdminRole struct {
	Admin     Address
	UpdatedAt time.Time
}

// AdminChange is the notification emitted after a successful admin
// transfer. Delivery is fire-and-forget from the ledger's perspective.
type AdminChange struct {
	EventID  string
	OldAdmin Address
	NewAdmin Address
	At       time.Time
}

package domain

import "time"

// Campaign represents a fundraising campaign.
// Amounts are stored in integer units (smallest currency unit).
type Campaign struct {
	ID           int64
	Title        string
	Description  string
	TargetAmount int64
	// RaisedAmount is the campaign's current withdrawable balance. It
	// grows with donations and shrinks with withdrawals; it is not a
	// lifetime total.
	RaisedAmount int64
	Owner        Address
	// IsCompleted latches to true the first time cumulative raised
	// funds reach the target and never reverts, even when later
	// withdrawals drop RaisedAmount below TargetAmount.
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

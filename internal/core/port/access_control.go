package port

import (
	"context"
	"errors"

	"charity-ledger/internal/core/domain"
)

var (
	// ErrNotAdmin is returned when a caller other than the current
	// admin attempts to transfer the role.
	ErrNotAdmin = errors.New("only admin can call this function")
	// ErrZeroAdminAddress is returned when the admin role would be
	// transferred to the zero identity.
	ErrZeroAdminAddress = errors.New("new admin cannot be zero address")
)

// AccessControl manages the single privileged admin identity.
type AccessControl interface {
	// Admin returns the current admin identity. Read-only.
	Admin(ctx context.Context) (domain.Address, error)
	// TransferAdminRole hands the admin role to newAdmin. Only the
	// current admin may call it; transferring to oneself is a
	// permitted no-op. A change notification is emitted after the
	// transfer commits.
	TransferAdminRole(ctx context.Context, caller, newAdmin domain.Address) error
}

// AdminRepository persists the admin role record.
type AdminRepository interface {
	// EnsureAdmin installs the initial admin if no role record exists
	// yet. It never overwrites an existing admin.
	EnsureAdmin(ctx context.Context, initial domain.Address) error
	// GetAdmin returns the current admin identity.
	GetAdmin(ctx context.Context) (domain.Address, error)
	// TransferAdmin atomically replaces the admin, verifying the
	// caller holds the role. It returns the previous admin.
	TransferAdmin(ctx context.Context, caller, newAdmin domain.Address) (domain.Address, error)
}

// AdminNotifier receives admin-change events. Delivery is
// fire-and-forget: a notifier failure never rolls back the transfer.
type AdminNotifier interface {
	AdminChanged(ctx context.Context, change domain.AdminChange)
}

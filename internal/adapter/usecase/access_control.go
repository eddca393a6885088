package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"charity-ledger/internal/core/domain"
	"charity-ledger/internal/core/port"
)

// AccessControlUseCase manages the single admin identity. The repository
// verifies the caller and swaps the role atomically; the notifier is
// invoked after a successful transfer and cannot roll it back.
type AccessControlUseCase struct {
	repo     port.AdminRepository
	notifier port.AdminNotifier
}

// NewAccessControlUseCase creates a new usecase with the provided
// repository and notification sink.
func NewAccessControlUseCase(repo port.AdminRepository, notifier port.AdminNotifier) *AccessControlUseCase {
	return &AccessControlUseCase{repo: repo, notifier: notifier}
}

// Admin returns the current admin identity.
func (u *AccessControlUseCase) Admin(ctx context.Context) (domain.Address, error) {
	return u.repo.GetAdmin(ctx)
}

// TransferAdminRole hands the admin role to newAdmin. The caller check
// runs before the zero-address check, so a non-admin caller always
// sees ErrNotAdmin. Transferring to the current admin is a permitted
// no-op; the notification is emitted either way.
func (u *AccessControlUseCase) TransferAdminRole(ctx context.Context, caller, newAdmin domain.Address) error {
	old, err := u.repo.TransferAdmin(ctx, domain.NormalizeAddress(caller), domain.NormalizeAddress(newAdmin))
	if err != nil {
		return err
	}
	u.notifier.AdminChanged(ctx, domain.AdminChange{
		EventID:  uuid.NewString(),
		OldAdmin: old,
		NewAdmin: domain.NormalizeAddress(newAdmin),
		At:       time.Now().UTC(),
	})
	return nil
}

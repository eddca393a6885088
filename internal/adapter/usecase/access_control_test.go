package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"charity-ledger/internal/core/domain"
	"charity-ledger/internal/core/port"
)

// fakeAdminRepo keeps the admin role in memory with the same caller
// and zero-address checks the Postgres repository performs under its
// row lock.
type fakeAdminRepo struct {
	admin domain.Address
}

func (f *fakeAdminRepo) EnsureAdmin(_ context.Context, initial domain.Address) error {
	if f.admin == "" {
		f.admin = initial
	}
	return nil
}

func (f *fakeAdminRepo) GetAdmin(_ context.Context) (domain.Address, error) {
	return f.admin, nil
}

func (f *fakeAdminRepo) TransferAdmin(_ context.Context, caller, newAdmin domain.Address) (domain.Address, error) {
	if caller != f.admin {
		return "", port.ErrNotAdmin
	}
	if newAdmin.IsZero() {
		return "", port.ErrZeroAdminAddress
	}
	old := f.admin
	f.admin = newAdmin
	return old, nil
}

type capturingNotifier struct {
	events []domain.AdminChange
}

func (n *capturingNotifier) AdminChanged(_ context.Context, change domain.AdminChange) {
	n.events = append(n.events, change)
}

func newAccessControl(t *testing.T) (*AccessControlUseCase, *fakeAdminRepo, *capturingNotifier) {
	t.Helper()
	repo := &fakeAdminRepo{}
	require.NoError(t, repo.EnsureAdmin(context.Background(), ownerAddr))
	sink := &capturingNotifier{}
	return NewAccessControlUseCase(repo, sink), repo, sink
}

func TestTransferAdminRole(t *testing.T) {
	svc, _, sink := newAccessControl(t)
	ctx := context.Background()

	require.NoError(t, svc.TransferAdminRole(ctx, ownerAddr, donorAddr))

	admin, err := svc.Admin(ctx)
	require.NoError(t, err)
	require.Equal(t, donorAddr, admin)

	require.Len(t, sink.events, 1)
	require.Equal(t, ownerAddr, sink.events[0].OldAdmin)
	require.Equal(t, donorAddr, sink.events[0].NewAdmin)
	require.NotEmpty(t, sink.events[0].EventID)
}

func TestTransferAdminRoleByNonAdmin(t *testing.T) {
	svc, _, sink := newAccessControl(t)
	ctx := context.Background()

	err := svc.TransferAdminRole(ctx, donorAddr, donorAddr2)
	require.ErrorIs(t, err, port.ErrNotAdmin)

	admin, err := svc.Admin(ctx)
	require.NoError(t, err)
	require.Equal(t, ownerAddr, admin)
	require.Empty(t, sink.events)
}

func TestTransferAdminRoleToZeroAddress(t *testing.T) {
	svc, _, sink := newAccessControl(t)
	ctx := context.Background()

	err := svc.TransferAdminRole(ctx, ownerAddr, domain.ZeroAddress)
	require.ErrorIs(t, err, port.ErrZeroAdminAddress)

	admin, err := svc.Admin(ctx)
	require.NoError(t, err)
	require.Equal(t, ownerAddr, admin)
	require.Empty(t, sink.events)
}

// Transferring the role to the current admin is a permitted no-op, but
// the change notification still fires.
func TestTransferAdminRoleToSelf(t *testing.T) {
	svc, _, sink := newAccessControl(t)
	ctx := context.Background()

	require.NoError(t, svc.TransferAdminRole(ctx, ownerAddr, ownerAddr))

	admin, err := svc.Admin(ctx)
	require.NoError(t, err)
	require.Equal(t, ownerAddr, admin)
	require.Len(t, sink.events, 1)
	require.Equal(t, ownerAddr, sink.events[0].OldAdmin)
	require.Equal(t, ownerAddr, sink.events[0].NewAdmin)
}

func TestEnsureAdminKeepsExisting(t *testing.T) {
	repo := &fakeAdminRepo{}
	ctx := context.Background()
	require.NoError(t, repo.EnsureAdmin(ctx, ownerAddr))
	require.NoError(t, repo.EnsureAdmin(ctx, donorAddr))

	admin, err := repo.GetAdmin(ctx)
	require.NoError(t, err)
	require.Equal(t, ownerAddr, admin)
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"charity-ledger/internal/core/domain"
	"charity-ledger/internal/core/port"
)

// AdminRepository implements port.AdminRepository on PostgreSQL. The
// admin role is a single row; transfers lock it so the caller check
// and the swap happen as one unit.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a new repository instance.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// EnsureAdmin installs the initial admin if no role record exists yet.
// An existing admin is never overwritten.
func (r *AdminRepository) EnsureAdmin(ctx context.Context, initial domain.Address) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO admin_role (id, admin_address, updated_at) VALUES (1, $1, $2)
ON CONFLICT (id) DO NOTHING`, string(initial), time.Now().UTC())
	return err
}

// GetAdmin returns the current admin identity.
func (r *AdminRepository) GetAdmin(ctx context.Context) (domain.Address, error) {
	var admin string
	err := r.pool.QueryRow(ctx, `SELECT admin_address FROM admin_role WHERE id = 1`).Scan(&admin)
	if err != nil {
		return "", err
	}
	return domain.Address(admin), nil
}

// TransferAdmin replaces the admin under a row lock. The caller check
// runs first, then the zero-address check, matching the precondition
// order callers observe. It returns the previous admin.
func (r *AdminRepository) TransferAdmin(ctx context.Context, caller, newAdmin domain.Address) (domain.Address, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var current string
	err = tx.QueryRow(ctx, `SELECT admin_address FROM admin_role WHERE id = 1 FOR UPDATE`).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrNotAdmin
		return "", err
	}
	if err != nil {
		return "", err
	}
	if domain.Address(current) != caller {
		err = port.ErrNotAdmin
		return "", err
	}
	if newAdmin.IsZero() {
		err = port.ErrZeroAdminAddress
		return "", err
	}
	_, err = tx.Exec(ctx, `UPDATE admin_role SET admin_address = $1, updated_at = $2 WHERE id = 1`,
		string(newAdmin), time.Now().UTC())
	if err != nil {
		return "", err
	}
	return domain.Address(current), nil
}

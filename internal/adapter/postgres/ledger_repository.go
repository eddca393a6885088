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

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Every mutating operation runs in a serializable
// transaction with the affected campaign row locked, which gives the
// ledger its strict global ordering: an aborted precondition rolls the
// whole operation back with no observable partial effect.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CreateCampaign appends a campaign and assigns the next dense id
// starting at 0. The id is computed inside the transaction so ids are
// never reused or reordered.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var next int64
	if err = tx.QueryRow(ctx, `SELECT COALESCE(MAX(id) + 1, 0) FROM campaigns`).Scan(&next); err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `INSERT INTO campaigns
(id, title, description, target_amount, raised_amount, owner_address, is_completed, created_at, updated_at)
VALUES ($1,$2,$3,$4,0,$5,false,$6,$6)`,
		next, c.Title, c.Description, c.TargetAmount, string(c.Owner), now)
	if err != nil {
		return 0, err
	}
	c.ID = next
	c.RaisedAmount = 0
	c.IsCompleted = false
	c.CreatedAt = now
	c.UpdatedAt = now
	return next, nil
}

// DonateAndTransfer appends a donation, debits the donor's custody
// account and bumps the campaign's raised amount in one transaction.
// IsCompleted latches once raised funds reach the target and is never
// cleared afterwards.
func (r *LedgerRepository) DonateAndTransfer(ctx context.Context, d *domain.Donation) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// lock campaign
	var target, raised int64
	var completed bool
	err = tx.QueryRow(ctx, `SELECT target_amount, raised_amount, is_completed FROM campaigns WHERE id = $1 FOR UPDATE`, d.CampaignID).
		Scan(&target, &raised, &completed)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrCampaignNotFound
		return err
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	// debit donor custody; the balance floor lives in the predicate so
	// an uncovered donation touches nothing
	tag, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance - $1, updated_at = $2 WHERE address = $3 AND balance >= $1`,
		d.Amount, now, string(d.Donor))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = port.ErrInsufficientFunds
		return err
	}

	var seq int64
	if err = tx.QueryRow(ctx, `SELECT COALESCE(MAX(seq) + 1, 0) FROM donations WHERE campaign_id = $1`, d.CampaignID).Scan(&seq); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO donations (campaign_id, seq, donor_address, amount, tx_ref, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		d.CampaignID, seq, string(d.Donor), d.Amount, d.TxRef, now)
	if err != nil {
		return err
	}

	newRaised := raised + d.Amount
	nowCompleted := completed || newRaised >= target
	_, err = tx.Exec(ctx, `UPDATE campaigns SET raised_amount = $1, is_completed = $2, updated_at = $3 WHERE id = $4`,
		newRaised, nowCompleted, now, d.CampaignID)
	if err != nil {
		return err
	}
	d.Seq = seq
	d.CreatedAt = now
	return nil
}

// WithdrawAndTransfer moves funds from the campaign to its owner's
// custody account. Ownership and the balance floor are checked under
// the campaign row lock; completion state is never touched.
func (r *LedgerRepository) WithdrawAndTransfer(ctx context.Context, campaignID int64, caller domain.Address, amount int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// lock campaign
	var owner string
	var raised int64
	err = tx.QueryRow(ctx, `SELECT owner_address, raised_amount FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).
		Scan(&owner, &raised)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrCampaignNotFound
		return err
	}
	if err != nil {
		return err
	}
	if domain.Address(owner) != caller {
		err = port.ErrNotCampaignOwner
		return err
	}
	if raised < amount {
		err = port.ErrInsufficientFunds
		return err
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `UPDATE campaigns SET raised_amount = raised_amount - $1, updated_at = $2 WHERE id = $3`,
		amount, now, campaignID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO accounts (address, balance, updated_at) VALUES ($1,$2,$3)
ON CONFLICT (address) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = EXCLUDED.updated_at`,
		owner, amount, now)
	return err
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, title, description, target_amount, raised_amount, owner_address, is_completed, created_at, updated_at FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Title, &c.Description, &c.TargetAmount, &c.RaisedAmount, &c.Owner, &c.IsCompleted, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns all campaigns ordered by id.
func (r *LedgerRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, description, target_amount, raised_amount, owner_address, is_completed, created_at, updated_at FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Title, &c.Description, &c.TargetAmount, &c.RaisedAmount, &c.Owner, &c.IsCompleted, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}

// ListDonations returns a campaign's donations ordered by sequence.
func (r *LedgerRepository) ListDonations(ctx context.Context, campaignID int64) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id, seq, donor_address, amount, tx_ref, created_at FROM donations WHERE campaign_id = $1 ORDER BY seq`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Donation, error) {
		var d domain.Donation
		err := row.Scan(&d.CampaignID, &d.Seq, &d.Donor, &d.Amount, &d.TxRef, &d.CreatedAt)
		return d, err
	})
}

// Deposit credits a custody account, creating it if needed.
func (r *LedgerRepository) Deposit(ctx context.Context, addr domain.Address, amount int64) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO accounts (address, balance, updated_at) VALUES ($1,$2,$3)
ON CONFLICT (address) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = EXCLUDED.updated_at`,
		string(addr), amount, time.Now().UTC())
	return err
}

// GetAccount returns a custody account by address, or nil when the
// address has never held a balance.
func (r *LedgerRepository) GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, `SELECT address, balance, updated_at FROM accounts WHERE address = $1`, string(addr)).
		Scan(&a.Address, &a.Balance, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

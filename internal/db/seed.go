package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the charity-ledger database: a few
// funded donor accounts, three campaigns and a donation history for
// each. Existing rows are left alone.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now().UTC()

	owner := "0x00000000000000000000000000000000000000a1"
	donors := []string{
		"0x00000000000000000000000000000000000000b1",
		"0x00000000000000000000000000000000000000b2",
		"0x00000000000000000000000000000000000000b3",
	}
	for _, d := range donors {
		_, err := db.Exec(ctx, `INSERT INTO accounts (address, balance, updated_at)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, d, int64(1_000_000), now)
		if err != nil {
			return err
		}
	}

	campaigns := []struct {
		title       string
		description string
		target      int64
	}{
		{"Save the Forest", "Plant trees worldwide", 500_000},
		{"Clean the Oceans", "Remove plastic from marine habitats", 250_000},
		{"Build a School", "Support education in rural regions", 750_000},
	}
	for i, c := range campaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns
(id, title, description, target_amount, raised_amount, owner_address, is_completed, created_at, updated_at)
VALUES ($1,$2,$3,$4,0,$5,false,$6,$6) ON CONFLICT DO NOTHING`,
			int64(i), c.title, c.description, c.target, owner, now)
		if err != nil {
			return err
		}
		// a short donation history per campaign
		var raised int64
		for j, d := range donors {
			amount := int64(10_000 * (j + 1))
			_, err = db.Exec(ctx, `INSERT INTO donations
(campaign_id, seq, donor_address, amount, tx_ref, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
				int64(i), int64(j), d, amount, uuid.NewString(), now)
			if err != nil {
				return err
			}
			raised += amount
		}
		_, err = db.Exec(ctx, `UPDATE campaigns SET raised_amount = $1, is_completed = $1 >= target_amount, updated_at = $2 WHERE id = $3 AND raised_amount = 0`,
			raised, now, int64(i))
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}
	}
	return nil
}

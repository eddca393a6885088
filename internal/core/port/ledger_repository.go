package port

import (
	"context"
	"errors"

	"charity-ledger/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when an operation references a
	// campaign id that was never assigned.
	ErrCampaignNotFound = errors.New("campaign does not exist")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// campaign's current raised amount, or a donor's custody balance
	// cannot cover a donation.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNotCampaignOwner is returned when a caller other than the
	// campaign's creator attempts to withdraw.
	ErrNotCampaignOwner = errors.New("not the campaign owner")
)

// LedgerRepository defines the persistence layer for the donation
// ledger. It is an outbound port in hexagonal architecture.
// Implementations must enforce the stateful preconditions (campaign
// existence, ownership, balance floors) atomically: a violated
// precondition aborts the whole operation with no observable partial
// effect.
type LedgerRepository interface {
	// CreateCampaign appends a campaign and assigns it the next dense
	// sequential id, starting at 0. The assigned id is written back
	// into c and returned.
	CreateCampaign(ctx context.Context, c *domain.Campaign) (int64, error)
	// DonateAndTransfer appends the donation, debits the donor's
	// custody account and increments the campaign's raised amount in
	// one transaction, latching IsCompleted when the target is reached.
	DonateAndTransfer(ctx context.Context, d *domain.Donation) error
	// WithdrawAndTransfer decrements the campaign's raised amount and
	// credits the owner's custody account in one transaction. Both
	// halves succeed together or neither takes effect.
	WithdrawAndTransfer(ctx context.Context, campaignID int64, caller domain.Address, amount int64) error

	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaigns returns all campaigns ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// ListDonations returns a campaign's donations ordered by sequence.
	ListDonations(ctx context.Context, campaignID int64) ([]domain.Donation, error)

	// Deposit credits a custody account, creating it if needed.
	Deposit(ctx context.Context, addr domain.Address, amount int64) error
	// GetAccount returns a custody account, or nil when the address has
	// never held a balance.
	GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error)
}

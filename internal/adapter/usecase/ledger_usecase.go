package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"charity-ledger/internal/core/domain"
	"charity-ledger/internal/core/port"
)

// LedgerUseCase provides business logic for the campaign and donation
// ledger. Stateless input validation happens here; stateful
// preconditions (existence, ownership, balance floors) are enforced by
// the repository inside one transaction so a violated precondition
// leaves no partial effect.
type LedgerUseCase struct {
	repo port.LedgerRepository
}

// NewLedgerUseCase creates a new usecase with the provided repository.
func NewLedgerUseCase(repo port.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{repo: repo}
}

// CreateCampaign validates the request and appends a campaign owned by
// the caller. The repository assigns the next dense sequential id.
func (u *LedgerUseCase) CreateCampaign(ctx context.Context, caller domain.Address, req port.CreateCampaignReq) (int64, error) {
	if caller.IsZero() {
		return 0, port.ErrZeroAddress
	}
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return 0, port.ErrEmptyCampaignText
	}
	if req.TargetAmount <= 0 {
		return 0, port.ErrInvalidTarget
	}
	c := &domain.Campaign{
		Title:        title,
		Description:  description,
		TargetAmount: req.TargetAmount,
		Owner:        domain.NormalizeAddress(caller),
	}
	return u.repo.CreateCampaign(ctx, c)
}

// Donate records a contribution and moves the amount from the caller's
// custody balance into the campaign. The transfer and the bookkeeping
// commit together or not at all.
func (u *LedgerUseCase) Donate(ctx context.Context, caller domain.Address, campaignID, amount int64) error {
	if caller.IsZero() {
		return port.ErrZeroAddress
	}
	if amount <= 0 {
		return port.ErrDonationTooSmall
	}
	d := &domain.Donation{
		CampaignID: campaignID,
		Donor:      domain.NormalizeAddress(caller),
		Amount:     amount,
		TxRef:      uuid.NewString(),
	}
	return u.repo.DonateAndTransfer(ctx, d)
}

// Withdraw moves funds from the campaign to its owner's custody
// balance. Ownership and the balance floor are verified by the
// repository under the campaign's row lock.
func (u *LedgerUseCase) Withdraw(ctx context.Context, caller domain.Address, campaignID, amount int64) error {
	if caller.IsZero() {
		return port.ErrZeroAddress
	}
	if amount <= 0 {
		return port.ErrInvalidAmount
	}
	return u.repo.WithdrawAndTransfer(ctx, campaignID, domain.NormalizeAddress(caller), amount)
}

// GetCampaign returns one campaign or ErrCampaignNotFound.
func (u *LedgerUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// ListCampaigns returns all campaigns ordered by id.
func (u *LedgerUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

// ListDonations returns a campaign's donation history in order.
func (u *LedgerUseCase) ListDonations(ctx context.Context, campaignID int64) ([]domain.Donation, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return u.repo.ListDonations(ctx, campaignID)
}

// Deposit credits the caller's custody balance.
func (u *LedgerUseCase) Deposit(ctx context.Context, caller domain.Address, amount int64) error {
	if caller.IsZero() {
		return port.ErrZeroAddress
	}
	if amount <= 0 {
		return port.ErrInvalidAmount
	}
	return u.repo.Deposit(ctx, domain.NormalizeAddress(caller), amount)
}

// Balance returns an address's custody balance; addresses that never
// held funds report zero.
func (u *LedgerUseCase) Balance(ctx context.Context, addr domain.Address) (int64, error) {
	if addr.IsZero() {
		return 0, port.ErrZeroAddress
	}
	acc, err := u.repo.GetAccount(ctx, domain.NormalizeAddress(addr))
	if err != nil {
		return 0, err
	}
	if acc == nil {
		return 0, nil
	}
	return acc.Balance, nil
}

package port

import (
	"context"
	"errors"

	"charity-ledger/internal/core/domain"
)

var (
	// ErrEmptyCampaignText is returned when a campaign is created
	// without a title or description.
	ErrEmptyCampaignText = errors.New("title and description are required")
	// ErrInvalidTarget is returned when a campaign target is not
	// strictly positive.
	ErrInvalidTarget = errors.New("target amount must be greater than 0")
	// ErrDonationTooSmall is returned when a donation amount is not
	// strictly positive.
	ErrDonationTooSmall = errors.New("donation must be greater than 0")
	// ErrInvalidAmount is returned for non-positive withdrawal,
	// deposit or conversion amounts.
	ErrInvalidAmount = errors.New("amount must be greater than 0")
	// ErrZeroAddress is returned when an operation requires a caller
	// identity and none was supplied.
	ErrZeroAddress = errors.New("caller address is required")
)

// CampaignLedger defines the business operations exposed by the
// donation ledger. This interface is the primary port into the
// application domain. The caller identity is passed explicitly so the
// core stays testable without a live authentication layer.
type CampaignLedger interface {
	// CreateCampaign registers a campaign owned by the caller and
	// returns its id. Ids are dense and sequential starting at 0.
	CreateCampaign(ctx context.Context, caller domain.Address, req CreateCampaignReq) (int64, error)

	// Donate records a contribution from the caller to the campaign
	// and moves the amount from the caller's custody balance into the
	// campaign, atomically. Over-funding past the target is permitted.
	Donate(ctx context.Context, caller domain.Address, campaignID, amount int64) error

	// Withdraw moves funds from the campaign to its owner's custody
	// balance. Only the campaign owner may withdraw, and never more
	// than the current raised amount. Withdrawals never change the
	// campaign's completion state.
	Withdraw(ctx context.Context, caller domain.Address, campaignID, amount int64) error

	// GetCampaign returns one campaign. Missing ids surface
	// ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaigns returns all campaigns ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// ListDonations returns a campaign's donation history in order.
	ListDonations(ctx context.Context, campaignID int64) ([]domain.Donation, error)

	// Deposit tops up the caller's custody balance. It is the inbound
	// half of the custody collaborator; donations spend from it.
	Deposit(ctx context.Context, caller domain.Address, amount int64) error
	// Balance returns an address's custody balance, zero when the
	// address has never held funds.
	Balance(ctx context.Context, addr domain.Address) (int64, error)
}

// CreateCampaignReq carries the immutable attributes of a new
// campaign. It is a DTO used by the HTTP layer and carries no domain
// behaviour.
type CreateCampaignReq struct {
	Title        string
	Description  string
	TargetAmount int64
}

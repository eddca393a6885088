package domain

import "time"

// Donation is an immutable record of one contribution to a campaign.
// Donations are append-only and indexed by their sequential position
// within the owning campaign.
type Donation struct {
	CampaignID int64
	Seq        int64
	Donor      Address
	Amount     int64
	// TxRef is a unique reference for the custody transfer that was
	// coupled to this donation.
	TxRef     string
	CreatedAt time.Time
}

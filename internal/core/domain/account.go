package domain

import "time"

// Account is a custody balance held by the ledger on behalf of an
// address. Donations debit the donor's account and withdrawals credit
// the campaign owner's account in the same transaction as the ledger
// bookkeeping.
type Account struct {
	Address   Address
	Balance   int64
	UpdatedAt time.Time
}

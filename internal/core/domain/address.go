package domain

import "strings"

// Address identifies a caller of the ledger. It is supplied by the
// invoking layer (HTTP middleware, signing wallet, test harness) and is
// trusted as already authenticated. Addresses are compared
// case-insensitively and stored normalised to lower case.
type Address string

// ZeroAddress is the null identity. It is never a valid owner, donor or
// admin.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// NormalizeAddress lowercases and trims an address so equality checks
// and database lookups behave consistently.
func NormalizeAddress(a Address) Address {
	return Address(strings.ToLower(strings.TrimSpace(string(a))))
}

// IsZero reports whether the address is empty or the null identity.
func (a Address) IsZero() bool {
	n := NormalizeAddress(a)
	return n == "" || n == ZeroAddress
}

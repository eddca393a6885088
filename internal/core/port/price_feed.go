package port

import (
	"context"
	"errors"
	"math/big"
)

// ErrOracleUnavailable is returned when the external price feed cannot
// be read or reports a non-positive price.
var ErrOracleUnavailable = errors.New("price feed unavailable")

// PriceFeed is the external oracle collaborator. Implementations
// report the latest price together with the number of decimals it is
// quoted in, so the converter can normalise it.
type PriceFeed interface {
	LatestPrice(ctx context.Context) (price *big.Int, decimals uint8, err error)
}

// PriceConverter converts native currency amounts into a reference
// value using the feed's latest price.
type PriceConverter interface {
	// ConversionRate returns amount valued at the feed's latest price,
	// scaled to a fixed 18-decimal reference unit and truncated toward
	// zero. It mutates no state; the result tracks the live feed.
	ConversionRate(ctx context.Context, amount int64) (*big.Int, error)
}

package usecase

import (
	"context"
	"fmt"
	"math/big"

	"charity-ledger/internal/core/port"
)

// referenceDecimals is the fixed decimal precision of the reference
// unit conversion results are expressed in.
const referenceDecimals = 18

var referenceUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(referenceDecimals), nil)

// ConverterUseCase converts native currency amounts into a reference
// value via an external price feed. It holds no state of its own; the
// result depends only on the input amount and the feed's latest price.
type ConverterUseCase struct {
	feed port.PriceFeed
}

// NewConverterUseCase creates a converter backed by the given feed.
func NewConverterUseCase(feed port.PriceFeed) *ConverterUseCase {
	return &ConverterUseCase{feed: feed}
}

// ConversionRate values amount at the feed's latest price. The price is
// normalised to 18 decimals whatever precision the feed quotes in, then
// the result is amount × normalisedPrice / 10^18, truncated toward
// zero. Feed failures and non-positive prices surface as
// ErrOracleUnavailable.
func (u *ConverterUseCase) ConversionRate(ctx context.Context, amount int64) (*big.Int, error) {
	if amount <= 0 {
		return nil, port.ErrInvalidAmount
	}
	price, decimals, err := u.feed.LatestPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrOracleUnavailable, err)
	}
	if price == nil || price.Sign() <= 0 {
		return nil, fmt.Errorf("%w: feed reported a non-positive price", port.ErrOracleUnavailable)
	}
	normalized := new(big.Int).Set(price)
	switch {
	case decimals < referenceDecimals:
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(referenceDecimals-decimals)), nil)
		normalized.Mul(normalized, scale)
	case decimals > referenceDecimals:
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals-referenceDecimals)), nil)
		normalized.Quo(normalized, scale)
	}
	result := new(big.Int).Mul(normalized, big.NewInt(amount))
	return result.Quo(result, referenceUnit), nil
}

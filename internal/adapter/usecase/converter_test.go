package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"charity-ledger/internal/core/port"
)

type fakeFeed struct {
	price    *big.Int
	decimals uint8
	err      error
}

func (f *fakeFeed) LatestPrice(context.Context) (*big.Int, uint8, error) {
	return f.price, f.decimals, f.err
}

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}

func TestConversionRateNormalizesFeedDecimals(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		decimals uint8
		amount   int64
		want     string
	}{
		{
			// 8-decimal oracle quoting 3000.00000000, amount of one
			// whole unit (10^18 smallest units)
			name:     "eight decimal feed",
			price:    "300000000000",
			decimals: 8,
			amount:   1_000_000_000_000_000_000,
			want:     "3000000000000000000000",
		},
		{
			name:     "eighteen decimal feed passes through",
			price:    "2000000000000000000", // 2.0
			decimals: 18,
			amount:   5,
			want:     "10",
		},
		{
			name:     "twenty decimal feed scales down",
			price:    "200000000000000000000", // 2.0 at 20 decimals
			decimals: 20,
			amount:   5,
			want:     "10",
		},
		{
			name:     "result truncates toward zero",
			price:    "1500000000000000000", // 1.5
			decimals: 18,
			amount:   1,
			want:     "1",
		},
		{
			name:     "small amount rounds down to zero",
			price:    "999999999999999999", // just below 1.0
			decimals: 18,
			amount:   1,
			want:     "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := &fakeFeed{price: bigFromString(t, tt.price), decimals: tt.decimals}
			svc := NewConverterUseCase(feed)

			got, err := svc.ConversionRate(context.Background(), tt.amount)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestConversionRateRejectsNonPositiveAmount(t *testing.T) {
	svc := NewConverterUseCase(&fakeFeed{price: big.NewInt(1), decimals: 18})

	_, err := svc.ConversionRate(context.Background(), 0)
	require.ErrorIs(t, err, port.ErrInvalidAmount)

	_, err = svc.ConversionRate(context.Background(), -3)
	require.ErrorIs(t, err, port.ErrInvalidAmount)
}

func TestConversionRateFeedFailure(t *testing.T) {
	svc := NewConverterUseCase(&fakeFeed{err: errors.New("connection refused")})

	_, err := svc.ConversionRate(context.Background(), 10)
	require.ErrorIs(t, err, port.ErrOracleUnavailable)
}

func TestConversionRateNonPositivePrice(t *testing.T) {
	for _, price := range []*big.Int{big.NewInt(0), big.NewInt(-5), nil} {
		svc := NewConverterUseCase(&fakeFeed{price: price, decimals: 8})

		_, err := svc.ConversionRate(context.Background(), 10)
		require.ErrorIs(t, err, port.ErrOracleUnavailable)
	}
}

package pricefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLatestPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"price":"300000000000","decimals":8}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 1)
	price, decimals, err := c.LatestPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, "300000000000", price.String())
	require.Equal(t, uint8(8), decimals)
}

func TestLatestPriceRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"price":"42","decimals":0}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 3)
	price, decimals, err := c.LatestPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(42), price.Int64())
	require.Zero(t, decimals)
	require.Equal(t, int32(2), calls.Load())
}

func TestLatestPriceExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 2)
	_, _, err := c.LatestPrice(context.Background())
	require.Error(t, err)
}

func TestLatestPriceMalformedPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"price":"not-a-number","decimals":8}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 1)
	_, _, err := c.LatestPrice(context.Background())
	require.ErrorContains(t, err, "malformed price")
}

// Package pricefeed implements the external price oracle port over a
// JSON HTTP endpoint.
package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// feedResponse is the wire format of the oracle endpoint. The price is
// a decimal integer string quoted with the given number of decimals.
type feedResponse struct {
	Price    string `json:"price"`
	Decimals uint8  `json:"decimals"`
}

// Client queries an HTTP price oracle. Transient failures are retried
// with exponential backoff; the caller's context bounds the whole
// attempt.
type Client struct {
	url    string
	client *http.Client
	tries  uint
}

// NewClient creates a feed client for the given endpoint. maxTries
// bounds the retry loop; values below 1 are treated as a single
// attempt.
func NewClient(url string, timeout time.Duration, maxTries uint) *Client {
	if maxTries < 1 {
		maxTries = 1
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		tries:  maxTries,
	}
}

// LatestPrice returns the oracle's latest reported price and its
// decimal precision.
func (c *Client) LatestPrice(ctx context.Context) (*big.Int, uint8, error) {
	operation := func() (feedResponse, error) {
		return c.fetch(ctx)
	}
	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(c.tries),
	)
	if err != nil {
		return nil, 0, err
	}
	price, ok := new(big.Int).SetString(resp.Price, 10)
	if !ok {
		return nil, 0, fmt.Errorf("malformed price %q", resp.Price)
	}
	return price, resp.Decimals, nil
}

func (c *Client) fetch(ctx context.Context) (feedResponse, error) {
	var out feedResponse
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return out, backoff.Permanent(err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return out, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

package configs

import "time"

// PriceFeed configures the external price oracle client used by the
// currency converter.
type PriceFeed struct {
	// URL is the oracle endpoint returning the latest price and its
	// decimal precision as JSON.
	URL string `env:"URL" envDefault:"http://localhost:8090/price"`
	// Timeout bounds a single feed request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	// MaxTries bounds the retry loop around a feed read.
	MaxTries uint `env:"MAX_TRIES" envDefault:"3"`
}

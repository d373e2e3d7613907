package collector

import (
	"context"
	"errors"
	"fmt"

	"FXAnalyzer/internal/model"
)

var (
	// ErrInvalidDays is returned for a non-positive lookback window.
	ErrInvalidDays = errors.New("days must be positive")
	// ErrInvalidCurrency is returned when a currency code is empty.
	ErrInvalidCurrency = errors.New("currency code is required")
)

// Fetcher defines the interface for fetching historical exchange rates.
type Fetcher interface {
	// FetchRates looks up the target rate for each of the last days
	// calendar days, today included. Per-date data failures are reported in
	// the result; a transport failure aborts the whole fetch.
	FetchRates(ctx context.Context, base, target string, days int) (*model.FetchResult, error)
	Name() string
}

// TransportError is a network-level failure for one date. It aborts the fetch.
type TransportError struct {
	Date string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Date, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func validateRequest(base, target string, days int) error {
	if days <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}
	if base == "" || target == "" {
		return ErrInvalidCurrency
	}
	return nil
}

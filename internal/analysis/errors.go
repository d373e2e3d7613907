package analysis

import "errors"

var (
	// ErrNoObservations is returned when a fetch produced nothing to analyze.
	ErrNoObservations = errors.New("no exchange rate observations")
	// ErrEmptySeries is returned when statistics or insights are requested for an empty series.
	ErrEmptySeries = errors.New("empty series")
	// ErrInvalidDate is returned when a row's date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

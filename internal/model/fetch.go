package model

import "fmt"

// UpstreamErrorKind classifies a per-date data failure.
type UpstreamErrorKind string

const (
	UpstreamHTTP   UpstreamErrorKind = "http"
	UpstreamAPI    UpstreamErrorKind = "api"
	UpstreamDecode UpstreamErrorKind = "decode"
)

// UpstreamError is a non-fatal failure for one date: either a non-200
// status or a payload whose result is not "success".
type UpstreamError struct {
	Date       string
	Kind       UpstreamErrorKind
	StatusCode int
	ErrorType  string
}

func (e UpstreamError) Error() string {
	switch e.Kind {
	case UpstreamHTTP:
		return fmt.Sprintf("%s: HTTP error: %d", e.Date, e.StatusCode)
	case UpstreamDecode:
		return fmt.Sprintf("%s: decode response: %s", e.Date, e.ErrorType)
	default:
		return fmt.Sprintf("%s: Error fetching data: %s", e.Date, e.ErrorType)
	}
}

// FetchResult holds rates keyed by YYYY-MM-DD and the dates that failed.
// Missing dates are absent, never zero-filled.
type FetchResult struct {
	Rates    map[string]float64
	Failures []UpstreamError
}

package collector

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"FXAnalyzer/internal/analysis"
	"FXAnalyzer/internal/insight"
	"FXAnalyzer/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Rates    map[string]float64
	Failures []model.UpstreamError
	Err      error
	Calls    int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchRates(_ context.Context, base, target string, days int) (*model.FetchResult, error) {
	m.Calls++
	if err := validateRequest(base, target, days); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	res := &model.FetchResult{Rates: make(map[string]float64, len(m.Rates))}
	for k, v := range m.Rates {
		res.Rates[k] = v
	}
	res.Failures = append(res.Failures, m.Failures...)
	return res, nil
}

// EmptyResultError is returned when no observation survived the fetch.
// Failures holds the per-date reasons, if any.
type EmptyResultError struct {
	Failures []model.UpstreamError
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no exchange rate data fetched (%d dates failed)", len(e.Failures))
}

func (e *EmptyResultError) Unwrap() error { return analysis.ErrNoObservations }

// Collector runs the fetch -> analyze -> statistics -> insights pipeline.
type Collector struct {
	Fetcher Fetcher
	Now     func() time.Time
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher, Now: time.Now}
}

// Run performs one synchronous analysis pass.
func (c *Collector) Run(ctx context.Context, base, target string, days int) (*model.Report, error) {
	runID := uuid.NewString()
	log.Printf("[INFO] run %s: %s/%s over %d days via %s", runID, base, target, days, c.Fetcher.Name())

	start := time.Now()
	fetched, err := c.Fetcher.FetchRates(ctx, base, target, days)
	log.Printf("[INFO] run %s: FetchRates executed in %s", runID, time.Since(start).Round(time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}

	series, err := analysis.Analyze(fetched.Rates)
	if errors.Is(err, analysis.ErrNoObservations) {
		return nil, &EmptyResultError{Failures: fetched.Failures}
	}
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	stats, err := analysis.Statistics(series)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}

	insights, err := insight.NewGenerator(days).Generate(series)
	if err != nil {
		return nil, fmt.Errorf("generate insights: %w", err)
	}

	return &model.Report{
		RunID:       runID,
		Base:        base,
		Target:      target,
		Days:        days,
		GeneratedAt: c.now(),
		Series:      series,
		Stats:       stats,
		Insights:    insights,
		Failures:    fetched.Failures,
	}, nil
}

func (c *Collector) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

package insight

import (
	"FXAnalyzer/internal/analysis"
	"FXAnalyzer/internal/model"
)

// DefaultDays is the lookback window named in trend messages when none is set.
const DefaultDays = 30

// VolatilityThreshold is the absolute stdev of daily change above which a
// series is called volatile. Same units as the rate.
const VolatilityThreshold = 0.01

// Generator turns a derived series into ordered insights.
type Generator struct {
	Days int
}

// NewGenerator creates a Generator for a lookback window of days.
func NewGenerator(days int) *Generator {
	if days <= 0 {
		days = DefaultDays
	}
	return &Generator{Days: days}
}

// Generate applies the rules in order: trend, significant changes,
// extremes, volatility.
func (g *Generator) Generate(series model.DerivedSeries) ([]model.Insight, error) {
	if len(series) == 0 {
		return nil, analysis.ErrEmptySeries
	}
	days := g.Days
	if days <= 0 {
		days = DefaultDays
	}

	insights := []model.Insight{trend(series, days)}
	if in, ok := significantChanges(series); ok {
		insights = append(insights, in)
	}
	insights = append(insights, extremes(series)...)
	insights = append(insights, volatility(series))
	return insights, nil
}

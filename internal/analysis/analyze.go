package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"FXAnalyzer/internal/calculator"
	"FXAnalyzer/internal/model"
)

// Analyze turns a fetch mapping into a date-ascending series with daily
// change and 7-day moving average columns.
func Analyze(rates map[string]float64) (model.DerivedSeries, error) {
	if len(rates) == 0 {
		return nil, ErrNoObservations
	}

	rows := make([]model.RawRow, 0, len(rates))
	for date, rate := range rates {
		r := rate
		rows = append(rows, model.RawRow{Date: date, Rate: &r})
	}

	series, err := Preprocess(rows)
	if err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}
	if len(series) == 0 {
		return nil, ErrNoObservations
	}

	sort.SliceStable(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return Derive(series)
}

// Derive computes the derived columns for an already sorted series.
func Derive(series model.RateSeries) (model.DerivedSeries, error) {
	rates := series.Rates()
	changes := calculator.Diff(rates)
	averages, err := calculator.RollingSMA(rates, calculator.MovingAverageWindow)
	if err != nil {
		return nil, fmt.Errorf("moving average: %w", err)
	}

	derived := make(model.DerivedSeries, len(series))
	for i, obs := range series {
		derived[i] = model.DerivedRow{
			RateObservation: obs,
			DailyChange:     changes[i],
			MovingAverage7:  averages[i],
		}
	}
	return derived, nil
}

// Statistics summarises the series. Daily change extremes ignore undefined
// values; with a single row they are NaN.
func Statistics(series model.DerivedSeries) (model.Statistics, error) {
	if len(series) == 0 {
		return model.Statistics{}, ErrEmptySeries
	}

	rates := series.Rates()
	best, _, worst, _, err := calculator.Extremes(rates)
	if err != nil {
		return model.Statistics{}, fmt.Errorf("rate extremes: %w", err)
	}
	avg, err := calculator.Mean(rates)
	if err != nil {
		return model.Statistics{}, fmt.Errorf("average rate: %w", err)
	}

	stats := model.Statistics{
		BestRate:           best,
		WorstRate:          worst,
		AverageRate:        avg,
		HighestDailyChange: math.NaN(),
		LowestDailyChange:  math.NaN(),
	}

	highChange, _, lowChange, _, err := calculator.Extremes(series.DailyChanges())
	switch {
	case errors.Is(err, calculator.ErrNoValues):
	case err != nil:
		return model.Statistics{}, fmt.Errorf("daily change extremes: %w", err)
	default:
		stats.HighestDailyChange = highChange
		stats.LowestDailyChange = lowChange
	}
	return stats, nil
}

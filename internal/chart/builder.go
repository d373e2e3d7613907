package chart

import (
	"fmt"

	"FXAnalyzer/internal/model"
)

// DefaultConversionAmount is the amount of target currency converted back to base.
const DefaultConversionAmount = 100.0

const (
	colorChange  = "red"
	colorAverage = "green"
)

// BuildAll produces every dashboard chart for a report. Returns nil for an empty series.
func BuildAll(rep *model.Report) *Set {
	if rep == nil || len(rep.Series) == 0 {
		return nil
	}
	return &Set{
		Trend:       BuildTrend(rep.Series, rep.Base, rep.Target, rep.Days),
		Advanced:    BuildAdvanced(rep.Series, rep.Base, rep.Target),
		Conversion:  BuildConversion(rep.Series, rep.Base, rep.Target, rep.Days, DefaultConversionAmount),
		Candlestick: BuildCandlestick(rep.Series, rep.Base, rep.Target, rep.Days),
	}
}

// BuildTrend plots the rate over time.
func BuildTrend(series model.DerivedSeries, base, target string, days int) *Config {
	points := make([]Point, len(series))
	for i, r := range series {
		rate := r.Rate
		points[i] = Point{X: label(r), Y: &rate}
	}
	return &Config{
		ChartType: "line",
		Title:     fmt.Sprintf("%s to %s Exchange Rate Over the Past %d Days", base, target, days),
		XAxis:     "Date",
		YAxis:     "Exchange Rate",
		Series:    []Series{{Name: "Exchange Rate", Mode: "lines", Data: points}},
	}
}

// BuildAdvanced plots daily change and the 7-day moving average.
func BuildAdvanced(series model.DerivedSeries, base, target string) *Config {
	changes := make([]Point, len(series))
	averages := make([]Point, len(series))
	for i, r := range series {
		changes[i] = Point{X: label(r), Y: r.DailyChange}
		averages[i] = Point{X: label(r), Y: r.MovingAverage7}
	}
	return &Config{
		ChartType: "scatter",
		Title:     fmt.Sprintf("Daily Change and 7-Day Moving Average of %s to %s Exchange Rate", base, target),
		XAxis:     "Date",
		YAxis:     "Value",
		Series: []Series{
			{Name: "Daily Change", Mode: "lines+markers", Color: colorChange, Data: changes},
			{Name: "7-Day Moving Average", Mode: "lines+markers", Color: colorAverage, Data: averages},
		},
	}
}

// BuildConversion plots how much base currency amount units of target buy.
func BuildConversion(series model.DerivedSeries, base, target string, days int, amount float64) *Config {
	points := make([]Point, len(series))
	for i, r := range series {
		v := amount / r.Rate
		points[i] = Point{X: label(r), Y: &v}
	}
	return &Config{
		ChartType: "line",
		Title:     fmt.Sprintf("$%g %s to %s Conversion Over Time (%d Days)", amount, target, base, days),
		XAxis:     "Date",
		YAxis:     "Conversion Amount",
		Series:    []Series{{Name: "Conversion Amount", Mode: "lines", Data: points}},
	}
}

// BuildCandlestick opens each bar at the previous rate; the first bar opens at its own rate.
func BuildCandlestick(series model.DerivedSeries, base, target string, days int) *Config {
	candles := make([]Candle, len(series))
	for i, r := range series {
		open := r.Rate
		if i > 0 {
			open = series[i-1].Rate
		}
		candles[i] = Candle{X: label(r), Open: open, High: r.Rate, Low: r.Rate, Close: r.Rate}
	}
	return &Config{
		ChartType: "candlestick",
		Title:     fmt.Sprintf("%s to %s Candlestick Chart Over the Past %d Days", base, target, days),
		XAxis:     "Date",
		YAxis:     "Exchange Rate",
		Candles:   candles,
	}
}

func label(r model.DerivedRow) string {
	return r.Date.Format(model.DateLayout)
}

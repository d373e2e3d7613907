package model

import "time"

// DateLayout is the calendar-date layout used for mapping keys and reports.
const DateLayout = "2006-01-02"

// RateObservation is a single daily exchange rate.
type RateObservation struct {
	Date time.Time
	Rate float64
}

// RawRow is an uncleaned date/rate pair. A nil Rate means the value is missing.
type RawRow struct {
	Date string
	Rate *float64
}

// RateSeries holds cleaned observations.
type RateSeries []RateObservation

// Rows converts the series back into raw rows.
func (s RateSeries) Rows() []RawRow {
	rows := make([]RawRow, len(s))
	for i, o := range s {
		rate := o.Rate
		rows[i] = RawRow{Date: o.Date.Format(DateLayout), Rate: &rate}
	}
	return rows
}

// Rates extracts the rate column.
func (s RateSeries) Rates() []float64 {
	rates := make([]float64, len(s))
	for i, o := range s {
		rates[i] = o.Rate
	}
	return rates
}

// DerivedRow extends an observation with day-over-day change and
// the trailing 7-row moving average. Nil means undefined.
type DerivedRow struct {
	RateObservation
	DailyChange    *float64
	MovingAverage7 *float64
}

// DerivedSeries is a date-ascending series with derived columns.
type DerivedSeries []DerivedRow

// Rates extracts the rate column.
func (s DerivedSeries) Rates() []float64 {
	rates := make([]float64, len(s))
	for i, r := range s {
		rates[i] = r.Rate
	}
	return rates
}

// DailyChanges returns the defined daily change values in series order.
func (s DerivedSeries) DailyChanges() []float64 {
	changes := make([]float64, 0, len(s))
	for _, r := range s {
		if r.DailyChange != nil {
			changes = append(changes, *r.DailyChange)
		}
	}
	return changes
}

// Statistics summarises a DerivedSeries snapshot.
type Statistics struct {
	BestRate           float64 `json:"best_rate"`
	WorstRate          float64 `json:"worst_rate"`
	AverageRate        float64 `json:"average_rate"`
	HighestDailyChange float64 `json:"highest_daily_change"`
	LowestDailyChange  float64 `json:"lowest_daily_change"`
}

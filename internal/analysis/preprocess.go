package analysis

import (
	"fmt"
	"math"
	"time"

	"FXAnalyzer/internal/model"
)

// Preprocess parses dates and drops rows whose rate is missing. Rows that
// repeat an earlier date are dropped as well. Order is preserved.
func Preprocess(rows []model.RawRow) (model.RateSeries, error) {
	series := make(model.RateSeries, 0, len(rows))
	seen := make(map[time.Time]struct{}, len(rows))
	for _, row := range rows {
		date, err := time.Parse(model.DateLayout, row.Date)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidDate, row.Date, err)
		}
		if row.Rate == nil || math.IsNaN(*row.Rate) {
			continue
		}
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}
		series = append(series, model.RateObservation{Date: date, Rate: *row.Rate})
	}
	return series, nil
}

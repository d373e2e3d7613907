package insight

import (
	"fmt"
	"math"

	"FXAnalyzer/internal/calculator"
	"FXAnalyzer/internal/model"
)

// trend compares the last rate to the first. Ties read as a decrease.
func trend(series model.DerivedSeries, days int) model.Insight {
	first, last := series[0].Rate, series[len(series)-1].Rate
	direction := "decreased"
	if last > first {
		direction = "increased"
	}
	return model.Insight{
		Rule:    model.RuleTrend,
		Message: fmt.Sprintf("The exchange rate has %s over the past %d days.", direction, days),
	}
}

// significantChanges counts days whose absolute change exceeds
// mean(|change|) + 2*stdev(|change|).
func significantChanges(series model.DerivedSeries) (model.Insight, bool) {
	abs := calculator.Abs(series.DailyChanges())
	std, ok := calculator.SampleStdDev(abs)
	if !ok {
		return model.Insight{}, false
	}
	mean, err := calculator.Mean(abs)
	if err != nil {
		return model.Insight{}, false
	}
	threshold := mean + 2*std

	count := 0
	for _, v := range abs {
		if v > threshold {
			count++
		}
	}
	if count == 0 {
		return model.Insight{}, false
	}
	return model.Insight{
		Rule:    model.RuleSignificantChanges,
		Message: fmt.Sprintf("There were %d days with significant changes in the exchange rate.", count),
	}, true
}

// extremes reports the first date holding the highest and the lowest rate.
func extremes(series model.DerivedSeries) []model.Insight {
	_, hi, _, lo, err := calculator.Extremes(series.Rates())
	if err != nil {
		return nil
	}
	return []model.Insight{
		{
			Rule:    model.RuleHighestRate,
			Message: fmt.Sprintf("The highest exchange rate was on %s.", series[hi].Date.Format(model.DateLayout)),
		},
		{
			Rule:    model.RuleLowestRate,
			Message: fmt.Sprintf("The lowest exchange rate was on %s.", series[lo].Date.Format(model.DateLayout)),
		},
	}
}

// volatility: an undefined stdev (fewer than two changes) reads as stable.
func volatility(series model.DerivedSeries) model.Insight {
	std, ok := calculator.SampleStdDev(series.DailyChanges())
	if ok && !math.IsNaN(std) && std > VolatilityThreshold {
		return model.Insight{Rule: model.RuleVolatility, Message: "The exchange rate has been quite volatile."}
	}
	return model.Insight{Rule: model.RuleVolatility, Message: "The exchange rate has been relatively stable."}
}

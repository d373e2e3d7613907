package notifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"FXAnalyzer/internal/model"
)

// FailedFetchMessage is shown when a run produced no data.
const FailedFetchMessage = "Failed to fetch data. Please check your API key and try again."

// FormatReport renders the data table, statistics and insights as plain text.
func FormatReport(rep *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Exchange Rates Analysis | %s -> %s | %s\n", rep.Base, rep.Target, rep.GeneratedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Run %s, %d of %d days fetched\n\n", rep.RunID, len(rep.Series), rep.Days))

	b.WriteString("Raw Data\n")
	b.WriteString(FormatTable(rep.Series))
	b.WriteString("\n")

	s := rep.Stats
	b.WriteString("Data Analysis\n")
	b.WriteString(fmt.Sprintf("  Best Exchange Rate:    %s\n", formatPlain(s.BestRate)))
	b.WriteString(fmt.Sprintf("  Worst Exchange Rate:   %s\n", formatPlain(s.WorstRate)))
	b.WriteString(fmt.Sprintf("  Average Exchange Rate: %s\n", fixed4(s.AverageRate)))
	b.WriteString(fmt.Sprintf("  Highest Daily Change:  %s\n", fixed4(s.HighestDailyChange)))
	b.WriteString(fmt.Sprintf("  Lowest Daily Change:   %s\n\n", fixed4(s.LowestDailyChange)))

	b.WriteString("Insights\n")
	for _, in := range rep.Insights {
		b.WriteString(fmt.Sprintf("  - %s\n", in.Message))
	}

	if len(rep.Failures) > 0 {
		b.WriteString(fmt.Sprintf("\n%d dates could not be fetched:\n", len(rep.Failures)))
		b.WriteString(FormatFailures(rep.Failures))
	}
	return b.String()
}

// FormatTable renders the derived series as an aligned text table.
func FormatTable(series model.DerivedSeries) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-10s  %14s  %14s  %20s\n", "Date", "Exchange Rate", "Daily Change", "7-Day Moving Average"))
	for _, r := range series {
		b.WriteString(fmt.Sprintf("  %-10s  %14s  %14s  %20s\n",
			r.Date.Format(model.DateLayout), formatPlain(r.Rate), optional(r.DailyChange), optional(r.MovingAverage7)))
	}
	return b.String()
}

// FormatFailures lists per-date upstream errors, one per line.
func FormatFailures(failures []model.UpstreamError) string {
	var b strings.Builder
	for _, f := range failures {
		b.WriteString(fmt.Sprintf("  ! %s\n", f.Error()))
	}
	return b.String()
}

func fixed4(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return decimal.NewFromFloat(v).StringFixed(4)
}

func formatPlain(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return decimal.NewFromFloat(v).String()
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fixed4(*v)
}

package analysis

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"FXAnalyzer/internal/model"
)

const eps = 1e-9

func ptr(v float64) *float64 { return &v }

func TestPreprocess_DropsMissingRates(t *testing.T) {
	rows := []model.RawRow{
		{Date: "2023-06-01", Rate: ptr(1.05)},
		{Date: "2023-06-02", Rate: nil},
		{Date: "2023-06-03", Rate: ptr(1.06)},
	}
	series, err := Preprocess(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(series))
	}
	if got := series[1].Date.Format(model.DateLayout); got != "2023-06-03" {
		t.Errorf("expected second row 2023-06-03, got %s", got)
	}
}

func TestPreprocess_DropsNaNAndDuplicates(t *testing.T) {
	rows := []model.RawRow{
		{Date: "2023-06-02", Rate: ptr(1.1)},
		{Date: "2023-06-01", Rate: ptr(math.NaN())},
		{Date: "2023-06-02", Rate: ptr(9.9)},
	}
	series, err := Preprocess(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 || series[0].Rate != 1.1 {
		t.Fatalf("expected only the first 2023-06-02 row, got %+v", series)
	}
}

func TestPreprocess_DoesNotSort(t *testing.T) {
	rows := []model.RawRow{
		{Date: "2023-06-03", Rate: ptr(1.0)},
		{Date: "2023-06-01", Rate: ptr(2.0)},
	}
	series, err := Preprocess(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series[0].Rate != 1.0 {
		t.Error("expected input order to be preserved")
	}
}

func TestPreprocess_Idempotent(t *testing.T) {
	rows := []model.RawRow{
		{Date: "2023-06-01", Rate: ptr(1.05)},
		{Date: "2023-06-02", Rate: nil},
		{Date: "2023-06-04", Rate: ptr(1.07)},
		{Date: "2023-06-03", Rate: ptr(1.06)},
	}
	once, err := Preprocess(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := Preprocess(once.Rows())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected idempotent preprocess:\n%+v\n%+v", once, twice)
	}
}

func TestPreprocess_InvalidDate(t *testing.T) {
	_, err := Preprocess([]model.RawRow{{Date: "06/01/2023", Rate: ptr(1)}})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestAnalyze_EmptyMapping(t *testing.T) {
	if _, err := Analyze(map[string]float64{}); !errors.Is(err, ErrNoObservations) {
		t.Fatalf("expected ErrNoObservations, got %v", err)
	}
	if _, err := Analyze(map[string]float64{"2024-01-01": math.NaN()}); !errors.Is(err, ErrNoObservations) {
		t.Fatalf("expected ErrNoObservations for all-missing rates, got %v", err)
	}
}

func TestAnalyze_SortsAndDerives(t *testing.T) {
	rates := map[string]float64{
		"2024-01-10": 1.10,
		"2024-01-01": 1.01,
		"2024-01-05": 1.05,
		"2024-01-03": 1.03,
		"2024-01-02": 1.02,
		"2024-01-04": 1.04,
		"2024-01-08": 1.08,
		"2024-01-06": 1.06,
		"2024-01-07": 1.07,
		"2024-01-09": 1.09,
	}
	series, err := Analyze(rates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != len(rates) {
		t.Fatalf("expected %d rows, got %d", len(rates), len(series))
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Date.After(series[i-1].Date) {
			t.Fatalf("row %d not strictly after row %d", i, i-1)
		}
	}

	if series[0].DailyChange != nil {
		t.Error("expected undefined daily change on first row")
	}
	for i := 1; i < len(series); i++ {
		want := series[i].Rate - series[i-1].Rate
		if series[i].DailyChange == nil || math.Abs(*series[i].DailyChange-want) > eps {
			t.Errorf("row %d: daily change mismatch", i)
		}
	}

	for i := 0; i < 6; i++ {
		if series[i].MovingAverage7 != nil {
			t.Errorf("row %d: expected undefined moving average", i)
		}
	}
	for i := 6; i < len(series); i++ {
		sum := 0.0
		for j := i - 6; j <= i; j++ {
			sum += series[j].Rate
		}
		if series[i].MovingAverage7 == nil || math.Abs(*series[i].MovingAverage7-sum/7) > eps {
			t.Errorf("row %d: moving average mismatch", i)
		}
	}
}

func TestStatistics_Scenario(t *testing.T) {
	series, err := Derive(model.RateSeries{
		{Date: mustDate(t, "2023-06-01"), Rate: 1.05},
		{Date: mustDate(t, "2023-06-02"), Rate: 1.07},
		{Date: mustDate(t, "2023-06-03"), Rate: 1.06},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, err := Statistics(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.BestRate != 1.07 {
		t.Errorf("expected best 1.07, got %f", stats.BestRate)
	}
	if stats.WorstRate != 1.05 {
		t.Errorf("expected worst 1.05, got %f", stats.WorstRate)
	}
	if math.Abs(stats.AverageRate-1.06) > eps {
		t.Errorf("expected average 1.06, got %f", stats.AverageRate)
	}
	if math.Abs(stats.HighestDailyChange-0.02) > eps {
		t.Errorf("expected highest change 0.02, got %f", stats.HighestDailyChange)
	}
	if math.Abs(stats.LowestDailyChange+0.01) > eps {
		t.Errorf("expected lowest change -0.01, got %f", stats.LowestDailyChange)
	}
}

func TestStatistics_BestAndWorstAreAchieved(t *testing.T) {
	series, err := Analyze(map[string]float64{
		"2024-02-01": 0.61, "2024-02-02": 0.63, "2024-02-03": 0.59, "2024-02-04": 0.60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, err := Statistics(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.BestRate < stats.WorstRate {
		t.Fatal("best rate below worst rate")
	}
	var bestSeen, worstSeen bool
	for _, r := range series {
		bestSeen = bestSeen || r.Rate == stats.BestRate
		worstSeen = worstSeen || r.Rate == stats.WorstRate
	}
	if !bestSeen || !worstSeen {
		t.Error("best/worst rate not achieved by any row")
	}
}

func TestStatistics_SingleRow(t *testing.T) {
	series, err := Analyze(map[string]float64{"2024-01-01": 1.07})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, err := Statistics(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.BestRate != 1.07 || stats.WorstRate != 1.07 {
		t.Errorf("unexpected rate extremes: %+v", stats)
	}
	if !math.IsNaN(stats.HighestDailyChange) || !math.IsNaN(stats.LowestDailyChange) {
		t.Errorf("expected NaN daily change extremes, got %+v", stats)
	}
}

func TestStatistics_Empty(t *testing.T) {
	if _, err := Statistics(nil); !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

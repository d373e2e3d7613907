package calculator

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestCalculateSMA(t *testing.T) {
	avg, err := CalculateSMA([]float64{1, 2, 3, 4}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(avg-3.5) > eps {
		t.Errorf("expected 3.5, got %f", avg)
	}
	if _, err := CalculateSMA([]float64{1}, 2); err == nil {
		t.Error("expected error for insufficient data")
	}
	if _, err := CalculateSMA([]float64{1}, 0); err == nil {
		t.Error("expected error for zero period")
	}
}

func TestRollingSMA_UndefinedUntilWindowFull(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	out, err := RollingSMA(values, MovingAverageWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 6; i++ {
		if out[i] != nil {
			t.Errorf("index %d: expected nil, got %f", i, *out[i])
		}
	}
	want := map[int]float64{6: 4, 7: 5, 8: 6}
	for i, w := range want {
		if out[i] == nil {
			t.Fatalf("index %d: expected value", i)
		}
		if math.Abs(*out[i]-w) > eps {
			t.Errorf("index %d: expected %f, got %f", i, w, *out[i])
		}
	}
}

func TestRollingSMA_ShortInput(t *testing.T) {
	out, err := RollingSMA([]float64{1, 2, 3}, MovingAverageWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range out {
		if v != nil {
			t.Errorf("index %d: expected nil", i)
		}
	}
}

func TestDiff(t *testing.T) {
	out := Diff([]float64{1.05, 1.07, 1.06})
	if out[0] != nil {
		t.Fatal("expected first change to be undefined")
	}
	if math.Abs(*out[1]-0.02) > eps || math.Abs(*out[2]+0.01) > eps {
		t.Errorf("unexpected diffs: %f %f", *out[1], *out[2])
	}
	if len(Diff(nil)) != 0 {
		t.Error("expected empty output for empty input")
	}
}

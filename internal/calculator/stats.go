package calculator

import (
	"errors"
	"math"
)

// ErrNoValues is returned when an aggregate is requested over nothing.
var ErrNoValues = errors.New("no values provided")

// Mean returns the arithmetic mean.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoValues
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// SampleStdDev returns the sample standard deviation (n-1 denominator).
// ok is false when fewer than two values are given.
func SampleStdDev(values []float64) (std float64, ok bool) {
	if len(values) < 2 {
		return 0, false
	}
	mean, _ := Mean(values)
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)-1)), true
}

// Abs returns the absolute value of every element.
func Abs(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Abs(v)
	}
	return out
}

// Extremes scans values and returns the maximum and minimum together with the
// index of their first occurrence.
func Extremes(values []float64) (high float64, highIdx int, low float64, lowIdx int, err error) {
	if len(values) == 0 {
		return 0, -1, 0, -1, ErrNoValues
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i, v := range values {
		if v > high {
			high = v
			highIdx = i
		}
		if v < low {
			low = v
			lowIdx = i
		}
	}
	return high, highIdx, low, lowIdx, nil
}

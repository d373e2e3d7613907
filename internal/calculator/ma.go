package calculator

import "errors"

// MovingAverageWindow is the trailing window used for the moving average column.
const MovingAverageWindow = 7

// CalculateSMA computes the simple moving average of the given values over the specified period.
func CalculateSMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// RollingSMA returns the trailing SMA ending at every index. Entries before
// the window is full are nil; windows never wrap or pad.
func RollingSMA(values []float64, period int) ([]*float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]*float64, len(values))
	for i := period - 1; i < len(values); i++ {
		avg, err := CalculateSMA(values[:i+1], period)
		if err != nil {
			return nil, err
		}
		out[i] = &avg
	}
	return out, nil
}

// Diff returns the first difference of values. Index 0 is nil.
func Diff(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		out[i] = &change
	}
	return out
}

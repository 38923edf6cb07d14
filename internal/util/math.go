package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits value to the range [minValue..maxValue]
func Clamp[T constraints.Float | constraints.Integer](value, minValue, maxValue T) T {
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

// Avg calculates the average of all values in the given array
func Avg(values []float64) float64 {
	if len(values) <= 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(values); i++ {
		sum += values[i]
	}
	return sum / (float64(len(values)))
}

// Ratio calculates the ration that target has in comparison to rangeMin and rangeMax
// Make sure that:
// rangeMin <= target <= rangeMax
// rangeMax - rangeMin != 0
func Ratio(target float64, rangeMin float64, rangeMax float64) float64 {
	return (target - rangeMin) / (rangeMax - rangeMin)
}

// Linspace returns n evenly spaced values over [start..stop], including both ends
func Linspace(start float64, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}
	result := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		result[i] = start + float64(i)*step
	}
	result[n-1] = stop
	return result
}

// ScaleToRange maps a percentage [0..100] onto [0..maxValue] and rounds it
func ScaleToRange(percent float64, maxValue int) int {
	scaled := math.Round(Clamp(percent, 0, 100) / 100 * float64(maxValue))
	return int(scaled)
}

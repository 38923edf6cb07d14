package util

import "github.com/asecurityteam/rolling"

func CreateRollingWindow(size int) *rolling.PointPolicy {
	if size <= 0 {
		size = 1
	}
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}

// GetWindowAvg returns the average of the values in the window, given that
// samples values have been appended to it so far. Buckets that have never
// been written to hold 0 and are not taken into account.
func GetWindowAvg(window *rolling.PointPolicy, samples int) float64 {
	size := int(window.Reduce(rolling.Count))
	n := min(samples, size)
	if n <= 0 {
		return 0
	}
	return window.Reduce(rolling.Sum) / float64(n)
}

func GetWindowMax(window *rolling.PointPolicy) float64 {
	return window.Reduce(rolling.Max)
}

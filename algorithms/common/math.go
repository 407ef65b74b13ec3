package common

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reductions over value slices using gonum. Every function returns 0 for an
// empty slice instead of panicking or producing NaN.

// Sum returns the sum of data
func Sum(data []float64) float64 {
	return floats.Sum(data)
}

// Max returns the largest element of data
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Percentile calculates the p-th percentile (p between 0 and 1) using the
// empirical quantile, so the result is always an element of data.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 || p < 0 || p > 1 {
		return 0.0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// RMS calculates root mean square
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return math.Sqrt(floats.Dot(data, data) / float64(len(data)))
}

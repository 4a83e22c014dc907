package stats

import (
	"math"
	"sort"
)

// Median calculates the median value
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// Sort a copy, the caller's slice stays untouched
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// SumInt64 returns the sum of integer counts
func SumInt64(values []int64) int64 {
	var sum int64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Ratio returns part/whole scaled to a percentage, 0 when whole is 0
func Ratio(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Round rounds to the given number of decimals, ties to even.
// The value is scaled first, so 0.0125 rounds on 12.5 rather than on its binary expansion.
func Round(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	scale := math.Pow(10, float64(decimals))
	return math.RoundToEven(value*scale) / scale
}

// RoundInt rounds to the nearest integer, ties to even
func RoundInt(value float64) int64 {
	return int64(math.RoundToEven(value))
}

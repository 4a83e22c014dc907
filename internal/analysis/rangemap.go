package analysis

import (
	"math"

	"github.com/jengzang/validity-dashboard/internal/models"
)

const (
	// SliderMin and SliderMax bound the logarithmic slider
	SliderMin = 0.0
	SliderMax = 6.0
	// SliderStep is the slider resolution
	SliderStep = 0.01

	// MaxHits caps the upper bound of the range
	MaxHits = 1000000.0
)

// TransformValue maps a slider position to a hit count
func TransformValue(position float64) float64 {
	return math.Pow(10, position)
}

// MapRange converts two slider positions, in any order, into hit-count bounds.
// The upper bound is clamped to MaxHits.
func MapRange(a, b float64) models.Bounds {
	x, y := TransformValue(a), TransformValue(b)
	bounds := models.Bounds{Min: math.Min(x, y), Max: math.Max(x, y)}
	if bounds.Max >= MaxHits {
		bounds.Max = MaxHits
	}
	return bounds
}

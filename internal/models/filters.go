package models

// RangeFilter represents the two logarithmic slider positions
type RangeFilter struct {
	Low  *float64 `form:"low" binding:"omitempty,min=0,max=6"`
	High *float64 `form:"high" binding:"omitempty,min=0,max=6"`
}

// Default slider positions, 10 and 100,000 hits
const (
	DefaultSliderLow  = 1.0
	DefaultSliderHigh = 5.0
)

// Positions returns the slider positions with defaults applied
func (f RangeFilter) Positions() (float64, float64) {
	low, high := DefaultSliderLow, DefaultSliderHigh
	if f.Low != nil {
		low = *f.Low
	}
	if f.High != nil {
		high = *f.High
	}
	return low, high
}

// Bounds is the hit-count range selected by the slider
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

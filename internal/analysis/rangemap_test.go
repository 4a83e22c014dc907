package analysis

import (
	"testing"

	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMapRangeDefault(t *testing.T) {
	b := MapRange(models.DefaultSliderLow, models.DefaultSliderHigh)
	assert.Equal(t, 10.0, b.Min)
	assert.Equal(t, 100000.0, b.Max)
}

func TestMapRangeOrdersBounds(t *testing.T) {
	assert.Equal(t, MapRange(1, 5), MapRange(5, 1))

	b := MapRange(4.5, 2)
	assert.LessOrEqual(t, b.Min, b.Max)
	assert.Equal(t, 100.0, b.Min)
}

func TestMapRangeClampsUpperBound(t *testing.T) {
	assert.Equal(t, MaxHits, MapRange(0, 6).Max)
	assert.Equal(t, MaxHits, MapRange(6, 6).Max)
	assert.Equal(t, MaxHits, MapRange(6, 6).Min, "lower bound is not clamped")
	assert.Equal(t, 1.0, MapRange(0, 6).Min)
}

func TestMapRangeMonotonic(t *testing.T) {
	prev := TransformValue(SliderMin)
	for i := 1; i <= 600; i++ {
		x := float64(i) * SliderStep
		cur := TransformValue(x)
		assert.LessOrEqual(t, prev, cur, "position %.2f", x)
		prev = cur

		b := MapRange(x, SliderMin)
		assert.LessOrEqual(t, b.Min, b.Max)
		assert.LessOrEqual(t, b.Max, MaxHits)
	}
}

func TestMapRangeIsDeterministic(t *testing.T) {
	assert.Equal(t, MapRange(1.37, 4.91), MapRange(1.37, 4.91))
	assert.Equal(t, models.Bounds{Min: TransformValue(1.37), Max: TransformValue(4.91)}, MapRange(4.91, 1.37))
}

func TestDescribeRange(t *testing.T) {
	assert.Equal(t,
		"Value Slider: Sort Geo Plots and Data Table by number of hits.Min hits per area: 10, Max hits per area: 100,000. ",
		DescribeRange(MapRange(1, 5)))
	assert.Equal(t,
		"Value Slider: Sort Geo Plots and Data Table by number of hits.Min hits per area: 1, Max hits per area: 1,000,000. ",
		DescribeRange(MapRange(6, 0)))
}

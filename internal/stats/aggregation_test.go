package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))

	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values, "input must not be reordered")
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(5, 0))
	assert.Equal(t, 90.0, Ratio(90, 100))
	assert.Equal(t, 5.0, Ratio(5, 100))
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     float64
	}{
		{"third", 100.0 / 3, 3, 33.333},
		{"two thirds", 200.0 / 3, 3, 66.667},
		{"tie to even down", 0.0125, 3, 0.012},
		{"tie to even up", 0.0135, 3, 0.014},
		{"already exact", 90, 3, 90},
		{"zero decimals", 2.5, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round(tt.value, tt.decimals))
		})
	}
}

func TestRoundInt(t *testing.T) {
	assert.Equal(t, int64(10), RoundInt(10.000000000000002))
	assert.Equal(t, int64(100000), RoundInt(99999.99999999997))
	assert.Equal(t, int64(2), RoundInt(2.5))
	assert.Equal(t, int64(4), RoundInt(3.5))
}

package analysis

import (
	"testing"

	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTotals(totals ...int64) []models.LocationRecord {
	records := make([]models.LocationRecord, 0, len(totals))
	for _, total := range totals {
		records = append(records, models.LocationRecord{City: "c", Total: total, Valid: total})
	}
	return records
}

func TestFilterByTotalHalfOpen(t *testing.T) {
	records := withTotals(100000, 99999, 10, 9)
	got := FilterByTotal(records, models.Bounds{Min: 10, Max: 100000})

	require.Len(t, got, 2)
	assert.Equal(t, int64(99999), got[0].Total)
	assert.Equal(t, int64(10), got[1].Total, "lower bound is inclusive")
}

func TestFilterByTotalExcludesUpperBound(t *testing.T) {
	got := FilterByTotal(withTotals(1000000), MapRange(0, 6))
	assert.Empty(t, got, "a total equal to the clamped maximum is excluded")
}

func TestFilterByTotalEmpty(t *testing.T) {
	got := FilterByTotal(withTotals(1, 2, 3), models.Bounds{Min: 10, Max: 20})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, FilterByTotal(nil, MapRange(1, 5)))
}

func TestFilterKeepsOrder(t *testing.T) {
	got := FilterByTotal(withTotals(500, 400, 300, 5), models.Bounds{Min: 10, Max: 1000})
	require.Len(t, got, 3)
	assert.Equal(t, []int64{500, 400, 300}, []int64{got[0].Total, got[1].Total, got[2].Total})
}

func TestProjectTable(t *testing.T) {
	rows := ProjectTable([]models.LocationRecord{{
		City: "Austin", Region: "TX", Lat: 30.2, Long: -97.7,
		Invalid: 90, Valid: 10, SuspiciousOrInvalid: 90, Total: 100, PercentInvalid: 90,
	}})
	require.Len(t, rows, 1)
	assert.Equal(t, models.TableRow{
		City: "Austin", Region: "TX", SuspiciousOrInvalid: 90, Total: 100, PercentInvalid: 90,
	}, rows[0])

	assert.NotNil(t, ProjectTable(nil))
}

func TestDeriveSharesBounds(t *testing.T) {
	d := Derive(twoLocations(), 5, 1)
	assert.Equal(t, MapRange(1, 5), d.Bounds)
	require.Len(t, d.Rows, 2)

	// both locations have exactly 100 hits, the upper edge of 10^2
	d = Derive(twoLocations(), 1, 2)
	assert.Empty(t, d.Rows)
	d = Derive(twoLocations(), 2, 3)
	assert.Len(t, d.Rows, 2)
}

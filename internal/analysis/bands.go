package analysis

import (
	"fmt"

	"github.com/jengzang/validity-dashboard/internal/models"
)

// Band colours, lowest to highest percent invalid
var bandColors = []string{"#2b83ba", "#abdda4", "#ffffbf", "#fdae61", "#d7191c"}

// LegacyBands are the historical band edges. They leave gaps between bands
// (5-6, 10-11, 15-16, 20-21) and exclude exactly 100%; both are kept on purpose.
var LegacyBands = []models.Band{
	{Start: 0, End: 5, Color: bandColors[0]},
	{Start: 6, End: 10, Color: bandColors[1]},
	{Start: 11, End: 15, Color: bandColors[2]},
	{Start: 16, End: 20, Color: bandColors[3]},
	{Start: 21, End: 100, Color: bandColors[4]},
}

// ContiguousBands close the gaps of LegacyBands and include 100%
var ContiguousBands = []models.Band{
	{Start: 0, End: 5, Color: bandColors[0]},
	{Start: 5, End: 10, Color: bandColors[1]},
	{Start: 10, End: 15, Color: bandColors[2]},
	{Start: 15, End: 20, Color: bandColors[3]},
	{Start: 20, End: 100, Color: bandColors[4], IncludeEnd: true},
}

// BandsFor returns the band edges for a scheme
func BandsFor(scheme models.BandScheme) ([]models.Band, error) {
	switch scheme {
	case models.BandSchemeLegacy, "":
		return LegacyBands, nil
	case models.BandSchemeContiguous:
		return ContiguousBands, nil
	default:
		return nil, fmt.Errorf("unknown band scheme %q", scheme)
	}
}

// BandLabel returns the legend label of a band
func BandLabel(b models.Band) string {
	return fmt.Sprintf("%d%% - %d%% Invalid", b.Start, b.End)
}

// InBand reports whether a percentage falls in the band, start inclusive
func InBand(b models.Band, percent float64) bool {
	if percent < float64(b.Start) {
		return false
	}
	if b.IncludeEnd {
		return percent <= float64(b.End)
	}
	return percent < float64(b.End)
}

// Classify splits records into one slice per band, in band order.
// Records in no band are counted in unbanded.
func Classify(records []models.LocationRecord, bands []models.Band) (slices [][]models.LocationRecord, unbanded int) {
	slices = make([][]models.LocationRecord, len(bands))
	for i := range slices {
		slices[i] = []models.LocationRecord{}
	}

	for _, rec := range records {
		matched := false
		for i, b := range bands {
			if InBand(b, rec.PercentInvalid) {
				slices[i] = append(slices[i], rec)
				matched = true
			}
		}
		if !matched {
			unbanded++
		}
	}
	return slices, unbanded
}

package analysis

import (
	"sort"

	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/jengzang/validity-dashboard/internal/stats"
)

// PercentDecimals is the precision of percent_invalid
const PercentDecimals = 3

// Pivot reshapes long-format hit records into one record per location.
// Categories absent for a location count as zero and validity values outside the
// four known categories are ignored. Each (location, validity) pair is expected
// at most once; the loaders reject duplicates. The result is ordered by total, highest first,
// with ties kept in (city, region, lat, long) order. The input is not modified.
func Pivot(hits []models.HitRecord) []models.LocationRecord {
	index := make(map[models.LocationKey]int, len(hits)/4+1)
	records := make([]models.LocationRecord, 0, len(hits)/4+1)
	keys := make([]models.LocationKey, 0, len(hits)/4+1)

	for _, h := range hits {
		key := h.Key()
		i, ok := index[key]
		if !ok {
			i = len(records)
			index[key] = i
			keys = append(keys, key)
			records = append(records, models.LocationRecord{
				City:   h.City,
				Region: h.Region,
				Lat:    h.Lat,
				Long:   h.Long,
			})
		}

		rec := &records[i]
		switch h.Validity {
		case models.ValidityInvalid:
			rec.Invalid = h.Hits
		case models.ValiditySuspicious:
			rec.Suspicious = h.Hits
		case models.ValidityUnknown:
			rec.Unknown = h.Hits
		case models.ValidityValid:
			rec.Valid = h.Hits
		}
	}

	for i := range records {
		derive(&records[i])
	}

	// Group order first, then a stable sort on total keeps ties deterministic
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return keys[order[a]].Less(keys[order[b]])
	})

	sorted := make([]models.LocationRecord, len(records))
	for i, j := range order {
		sorted[i] = records[j]
	}
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Total > sorted[b].Total
	})

	return sorted
}

// derive fills the totals and percentage of a pivoted record
func derive(rec *models.LocationRecord) {
	rec.UnknownOrValid = rec.Valid + rec.Unknown
	rec.SuspiciousOrInvalid = rec.Invalid + rec.Suspicious
	rec.Total = rec.Invalid + rec.Suspicious + rec.Unknown + rec.Valid

	// A zero total yields 0 rather than NaN; such rows never pass the range filter
	rec.PercentInvalid = stats.Round(stats.Ratio(rec.SuspiciousOrInvalid, rec.Total), PercentDecimals)
}

package analysis

import "github.com/jengzang/validity-dashboard/internal/models"

// FilterByTotal keeps records with bounds.Min <= total < bounds.Max.
// Order is preserved; an empty result is returned as an empty, non-nil slice.
func FilterByTotal(records []models.LocationRecord, bounds models.Bounds) []models.LocationRecord {
	filtered := make([]models.LocationRecord, 0, len(records))
	for _, rec := range records {
		total := float64(rec.Total)
		if total >= bounds.Min && total < bounds.Max {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// ProjectTable projects filtered records onto the table columns
func ProjectTable(records []models.LocationRecord) []models.TableRow {
	rows := make([]models.TableRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, models.TableRow{
			City:                rec.City,
			Region:              rec.Region,
			SuspiciousOrInvalid: rec.SuspiciousOrInvalid,
			Total:               rec.Total,
			PercentInvalid:      rec.PercentInvalid,
		})
	}
	return rows
}

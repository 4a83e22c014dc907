package analysis

import "github.com/jengzang/validity-dashboard/internal/models"

// Derivation is the shared result of one slider interaction
type Derivation struct {
	Bounds models.Bounds
	Rows   []models.LocationRecord
}

// Derive pivots the hits and filters them to the slider range.
// Map, table and label consumers all read from the same Derivation.
func Derive(hits []models.HitRecord, low, high float64) Derivation {
	bounds := MapRange(low, high)
	return Derivation{
		Bounds: bounds,
		Rows:   FilterByTotal(Pivot(hits), bounds),
	}
}

// Package dataset loads the two startup inputs of the dashboard and holds
// them, read-only, for the lifetime of the process.
package dataset

import (
	"errors"
	"fmt"

	"github.com/jengzang/validity-dashboard/internal/models"
)

var (
	// ErrMissingColumn is returned when a required column is absent from the raw data
	ErrMissingColumn = errors.New("missing required column")
	// ErrDuplicateHit is returned when a (location, validity) pair appears twice
	ErrDuplicateHit = errors.New("duplicate hit record")
)

// LoadError describes where a dataset failed to load
type LoadError struct {
	Path string
	Line int // 0 when not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Dataset is the immutable pair of inputs shared by every request.
// Callers must not modify the slices it hands out.
type Dataset struct {
	hits   []models.HitRecord
	export models.ExportTable
}

// New validates the raw hits and wraps both inputs
func New(hits []models.HitRecord, export models.ExportTable) (*Dataset, error) {
	type hitKey struct {
		loc      models.LocationKey
		validity models.Validity
	}

	seen := make(map[hitKey]struct{}, len(hits))
	for _, h := range hits {
		k := hitKey{loc: h.Key(), validity: h.Validity}
		if _, ok := seen[k]; ok {
			return nil, fmt.Errorf("%w: %s, %s (%v, %v) %s", ErrDuplicateHit, h.City, h.Region, h.Lat, h.Long, h.Validity)
		}
		seen[k] = struct{}{}
	}

	return &Dataset{hits: hits, export: export}, nil
}

// Hits returns the raw hit records
func (d *Dataset) Hits() []models.HitRecord {
	return d.hits
}

// Export returns the downloadable pivot table
func (d *Dataset) Export() models.ExportTable {
	return d.export
}

package models

// DashboardView is everything the page needs for one slider position.
// Figure, table and summary are derived from the same filtered rows.
type DashboardView struct {
	Bounds  Bounds           `json:"bounds"`
	Label   string           `json:"label"`
	Figure  Figure           `json:"figure"`
	Extent  *Extent          `json:"extent,omitempty"` // nil when nothing is plotted
	Columns []string         `json:"columns"`
	Table   []TableRow       `json:"table"`
	Summary DashboardSummary `json:"summary"`
}

// RangeView is the bounds and label for a slider position
type RangeView struct {
	Bounds Bounds `json:"bounds"`
	Label  string `json:"label"`
}

// DashboardSummary aggregates the filtered locations
type DashboardSummary struct {
	Locations            int     `json:"locations"`
	TotalHits            int64   `json:"total_hits"`
	SuspiciousOrInvalid  int64   `json:"suspicious_or_invalid"`
	PercentInvalid       float64 `json:"percent_invalid"`
	MedianPercentInvalid float64 `json:"median_percent_invalid"`

	// Locations per band, keyed by legend label
	BandCounts map[string]int `json:"band_counts"`
	// Locations whose percent falls between band edges
	Unbanded int `json:"unbanded"`
}

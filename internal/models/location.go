package models

// LocationRecord represents the pivoted, per-location validity counts
type LocationRecord struct {
	City   string  `json:"server.city"`
	Region string  `json:"server.region"`
	Lat    float64 `json:"lat"`
	Long   float64 `json:"long"`

	// Category counts, zero when the category never appears for the location
	Invalid    int64 `json:"invalid"`
	Suspicious int64 `json:"suspicious"`
	Unknown    int64 `json:"unknown"`
	Valid      int64 `json:"valid"`

	// Derived
	UnknownOrValid      int64   `json:"unknown_or_valid"`
	SuspiciousOrInvalid int64   `json:"suspicious_or_invalid"`
	Total               int64   `json:"total"`
	PercentInvalid      float64 `json:"percent_invalid"` // 0-100, rounded to 3 decimals
}

// TableRow is the projection shown in the data table
type TableRow struct {
	City                string  `json:"server.city"`
	Region              string  `json:"server.region"`
	SuspiciousOrInvalid int64   `json:"suspicious_or_invalid"`
	Total               int64   `json:"total"`
	PercentInvalid      float64 `json:"percent_invalid"`
}

// TableColumns lists the table columns in display order
var TableColumns = []string{
	"server.city",
	"server.region",
	"suspicious_or_invalid",
	"total",
	"percent_invalid",
}

// ExportTable holds the precomputed pivot offered for download.
// Cells are kept as read so the export reproduces the input.
type ExportTable struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

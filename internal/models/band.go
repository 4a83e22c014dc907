package models

// Band is a fixed percent-invalid range used to colour map markers
type Band struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Color string `json:"color"`

	// IncludeEnd makes the upper edge inclusive
	IncludeEnd bool `json:"include_end,omitempty"`
}

// BandScheme selects the band edges
type BandScheme string

const (
	// BandSchemeLegacy keeps the historical edges, gaps included
	BandSchemeLegacy BandScheme = "legacy"
	// BandSchemeContiguous closes the gaps between bands and includes 100%
	BandSchemeContiguous BandScheme = "contiguous"
)

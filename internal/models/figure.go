package models

// Figure is a Plotly figure document rendered by the dashboard page
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one scattergeo marker layer, one per band
type Trace struct {
	Type         string    `json:"type"`         // always "scattergeo"
	LocationMode string    `json:"locationmode"` // "USA-states"
	Name         string    `json:"name"`         // legend label
	Lat          []float64 `json:"lat"`
	Lon          []float64 `json:"lon"`
	Text         []string  `json:"text"`
	Marker       Marker    `json:"marker"`
}

// Marker describes how the points of a trace are drawn
type Marker struct {
	Size     []float64  `json:"size"`
	SizeMode string     `json:"sizemode"`
	Color    string     `json:"color"`
	Opacity  float64    `json:"opacity"`
	Line     MarkerLine `json:"line"`
}

// MarkerLine is the outline of a marker
type MarkerLine struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Layout is the figure-level configuration
type Layout struct {
	Title      Title `json:"title"`
	ShowLegend bool  `json:"showlegend"`
	Height     int   `json:"height"`
	Width      int   `json:"width"`
	Geo        Geo   `json:"geo"`
}

// Title holds the figure title text
type Title struct {
	Text string `json:"text"`
}

// Geo configures the geographic subplot
type Geo struct {
	Scope     string `json:"scope"`
	LandColor string `json:"landcolor"`
}

// Extent is the lat/long bounding box of the plotted markers
type Extent struct {
	MinLat    float64 `json:"min_lat"`
	MaxLat    float64 `json:"max_lat"`
	MinLon    float64 `json:"min_lon"`
	MaxLon    float64 `json:"max_lon"`
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
	SpanKm    float64 `json:"span_km"` // corner-to-corner great-circle distance
}

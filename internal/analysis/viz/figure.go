package viz

import (
	"math"
	"strconv"
	"strings"

	"github.com/jengzang/validity-dashboard/internal/analysis"
	"github.com/jengzang/validity-dashboard/internal/models"
)

const (
	// MarkerScale divides a location's total hits into its marker area
	MarkerScale = 100.0

	FigureTitle  = "Invalid Impressions by Location<br>(Click legend to toggle traces)"
	FigureHeight = 600
	FigureWidth  = 1400
)

// BuildFigure draws one scattergeo trace per band, in band order.
// Every band gets a trace even when it has no locations so that each band
// stays a separate legend entry that can be toggled on its own.
func BuildFigure(slices [][]models.LocationRecord, bands []models.Band) models.Figure {
	traces := make([]models.Trace, 0, len(bands))
	for i, band := range bands {
		var records []models.LocationRecord
		if i < len(slices) {
			records = slices[i]
		}
		traces = append(traces, buildTrace(band, records))
	}

	return models.Figure{
		Data: traces,
		Layout: models.Layout{
			Title:      models.Title{Text: FigureTitle},
			ShowLegend: true,
			Height:     FigureHeight,
			Width:      FigureWidth,
			Geo: models.Geo{
				Scope:     "usa",
				LandColor: "rgb(217, 217, 217)",
			},
		},
	}
}

func buildTrace(band models.Band, records []models.LocationRecord) models.Trace {
	trace := models.Trace{
		Type:         "scattergeo",
		LocationMode: "USA-states",
		Name:         analysis.BandLabel(band),
		Lat:          make([]float64, 0, len(records)),
		Lon:          make([]float64, 0, len(records)),
		Text:         make([]string, 0, len(records)),
		Marker: models.Marker{
			Size:     make([]float64, 0, len(records)),
			SizeMode: "area",
			Color:    band.Color,
			Opacity:  0.9,
			Line: models.MarkerLine{
				Color: "rgb(40,40,40)",
				Width: 0.5,
			},
		},
	}

	for _, rec := range records {
		trace.Lat = append(trace.Lat, rec.Lat)
		trace.Lon = append(trace.Lon, rec.Long)
		trace.Text = append(trace.Text, HoverText(rec))
		trace.Marker.Size = append(trace.Marker.Size, float64(rec.Total)/MarkerScale)
	}
	return trace
}

// HoverText is the tooltip shown for a location marker
func HoverText(rec models.LocationRecord) string {
	var b strings.Builder
	b.WriteString(rec.City)
	b.WriteString(", ")
	b.WriteString(rec.Region)
	b.WriteString("<br>Lat: ")
	b.WriteString(FormatFloat(rec.Lat))
	b.WriteString(" Lon: ")
	b.WriteString(FormatFloat(rec.Long))
	b.WriteString("<br>Invalid Hits: ")
	b.WriteString(strconv.FormatInt(rec.SuspiciousOrInvalid, 10))
	b.WriteString("<br>Hits: ")
	b.WriteString(strconv.FormatInt(rec.Total, 10))
	b.WriteString("<br>Invalid: ")
	b.WriteString(FormatFloat(rec.PercentInvalid))
	b.WriteString("%")
	return b.String()
}

// FormatFloat prints a float the way the dashboard always has: shortest
// round-trip digits, a trailing ".0" on whole numbers and exponent notation
// only for very small or very large magnitudes (90.0, 33.333, 1e-05, 1e+16).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

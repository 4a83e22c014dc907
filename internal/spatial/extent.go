package spatial

import (
	"github.com/golang/geo/s2"
	"github.com/jengzang/validity-dashboard/internal/models"
)

// EarthRadiusKm is the mean Earth radius in kilometers
const EarthRadiusKm = 6371.0088

// Bound returns the smallest lat/long rectangle holding every valid location.
// Locations with out-of-range coordinates are skipped.
func Bound(records []models.LocationRecord) s2.Rect {
	rect := s2.EmptyRect()
	for _, rec := range records {
		ll := s2.LatLngFromDegrees(rec.Lat, rec.Long)
		if !ll.IsValid() {
			continue
		}
		rect = rect.AddPoint(ll)
	}
	return rect
}

// Extent describes the area covered by the locations, nil when there is none
func Extent(records []models.LocationRecord) *models.Extent {
	rect := Bound(records)
	if rect.IsEmpty() {
		return nil
	}

	lo, hi, center := rect.Lo(), rect.Hi(), rect.Center()
	ext := &models.Extent{
		MinLat:    lo.Lat.Degrees(),
		MaxLat:    hi.Lat.Degrees(),
		MinLon:    lo.Lng.Degrees(),
		MaxLon:    hi.Lng.Degrees(),
		CenterLat: center.Lat.Degrees(),
		CenterLon: center.Lng.Degrees(),
	}
	ext.SpanKm = DistanceKm(ext.MinLat, ext.MinLon, ext.MaxLat, ext.MaxLon)
	return ext
}

// DistanceKm returns the great-circle distance between two points in kilometers
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

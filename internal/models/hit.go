package models

// Validity is the classification attached to a recorded hit
type Validity string

const (
	ValidityValid      Validity = "valid"
	ValidityInvalid    Validity = "invalid"
	ValiditySuspicious Validity = "suspicious"
	ValidityUnknown    Validity = "unknown"
)

// HitRecord represents one row of the raw long-format hit dataset
type HitRecord struct {
	City     string   `json:"server.city" db:"city"`
	Region   string   `json:"server.region" db:"region"`
	Lat      float64  `json:"lat" db:"lat"`
	Long     float64  `json:"long" db:"long"`
	Validity Validity `json:"validity" db:"validity"`
	Hits     int64    `json:"hits" db:"hits"`
}

// Key returns the location the hit belongs to
func (h HitRecord) Key() LocationKey {
	return LocationKey{City: h.City, Region: h.Region, Lat: h.Lat, Long: h.Long}
}

// LocationKey identifies one server location
type LocationKey struct {
	City   string
	Region string
	Lat    float64
	Long   float64
}

// Less orders keys by city, region, lat, long
func (k LocationKey) Less(o LocationKey) bool {
	if k.City != o.City {
		return k.City < o.City
	}
	if k.Region != o.Region {
		return k.Region < o.Region
	}
	if k.Lat != o.Lat {
		return k.Lat < o.Lat
	}
	return k.Long < o.Long
}

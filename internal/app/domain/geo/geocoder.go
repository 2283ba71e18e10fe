package geo

import "strings"

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Geocoder resolves an activity's free-text location to a coordinate.
// The production implementation below is deliberately approximate; the
// interface exists so a real geocoding service can be swapped in.
type Geocoder interface {
	// Geocode maps locationText to a coordinate. index is the 0-based
	// position of the activity among the emitted points of its day, used
	// by approximate implementations to spread markers.
	Geocode(locationText string, index int) Coordinate
}

// OffsetGeocoder places points at a fixed per-city base coordinate plus
// an index-scaled step. It recognizes exactly two city names in the
// location text and falls back to the second one's base otherwise. Not
// real geocoding — a placeholder kept behind the Geocoder interface on
// purpose.
type OffsetGeocoder struct {
	Step float64
}

var (
	beijingBase  = Coordinate{Lat: 39.9042, Lng: 116.4074}
	shanghaiBase = Coordinate{Lat: 31.2304, Lng: 121.4737}
)

// NewOffsetGeocoder returns the default 0.01-degree-step geocoder.
func NewOffsetGeocoder() *OffsetGeocoder {
	return &OffsetGeocoder{Step: 0.01}
}

// Geocode implements Geocoder.
func (g *OffsetGeocoder) Geocode(locationText string, index int) Coordinate {
	base := shanghaiBase
	if strings.Contains(locationText, "北京") {
		base = beijingBase
	}
	offset := float64(index) * g.Step
	return Coordinate{Lat: base.Lat + offset, Lng: base.Lng + offset}
}

package geo

import "math"

// ValidCoordinate checks if latitude and longitude are in range.
// Latitude must be between -90 and 90, longitude between -180 and 180;
// the 0,0 pair is treated as missing data.
func ValidCoordinate(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Bounds is a rectangular viewport around a set of points.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// CalculateBounds returns the bounding box of the valid coordinates in
// the input, and false when none are valid.
func CalculateBounds(coordinates []Coordinate) (Bounds, bool) {
	b := Bounds{
		MinLat: math.MaxFloat64,
		MaxLat: -math.MaxFloat64,
		MinLng: math.MaxFloat64,
		MaxLng: -math.MaxFloat64,
	}

	found := false
	for _, c := range coordinates {
		if !ValidCoordinate(c.Lat, c.Lng) {
			continue
		}
		found = true
		b.MinLat = math.Min(b.MinLat, c.Lat)
		b.MaxLat = math.Max(b.MaxLat, c.Lat)
		b.MinLng = math.Min(b.MinLng, c.Lng)
		b.MaxLng = math.Max(b.MaxLng, c.Lng)
	}
	if !found {
		return Bounds{}, false
	}
	return b, true
}

// CenterPoint averages the valid coordinates, falling back to the
// given default when none are valid.
func CenterPoint(coordinates []Coordinate, fallback Coordinate) Coordinate {
	var latSum, lngSum float64
	n := 0
	for _, c := range coordinates {
		if !ValidCoordinate(c.Lat, c.Lng) {
			continue
		}
		latSum += c.Lat
		lngSum += c.Lng
		n++
	}
	if n == 0 {
		return fallback
	}
	return Coordinate{Lat: latSum / float64(n), Lng: lngSum / float64(n)}
}

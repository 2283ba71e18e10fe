package geo

import (
	"github.com/tripmind/tripmind/internal/app/models"
)

// The literal an itinerary uses for a transfer step that starts at the
// visitor's hotel. No coordinate is meaningful for it, so projection
// skips it.
const fromHotelPlaceholder = "从酒店出发"

// Projector derives map-plottable points from a trip's activities.
type Projector struct {
	geocoder Geocoder
}

// NewProjector builds a projector over the given geocoder.
func NewProjector(g Geocoder) *Projector {
	return &Projector{geocoder: g}
}

// Project walks days and activities in order and emits one
// LocationPoint per plottable activity. Within each day the emitted
// points carry a dense 1..N order; output ordering matches input
// ordering. The result is derived state: recompute it whenever the trip
// changes.
func (p *Projector) Project(trip *models.Trip) []models.LocationPoint {
	if trip == nil {
		return nil
	}

	var points []models.LocationPoint
	for dayIdx, day := range trip.Days {
		order := 0
		for _, act := range day.Activities {
			if act.Location == fromHotelPlaceholder {
				continue
			}
			coord := p.geocoder.Geocode(act.Location, order)
			order++
			points = append(points, models.LocationPoint{
				Name:        act.Title,
				Address:     act.Location,
				Latitude:    coord.Lat,
				Longitude:   coord.Lng,
				Day:         dayIdx + 1,
				Order:       order,
				Description: act.Description,
			})
		}
	}
	return points
}

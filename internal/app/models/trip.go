package models

import (
	"fmt"
	"time"
)

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Message is one turn of the conversation. Messages are immutable once
// created and are appended to an insertion-ordered log.
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	TripData  *Trip       `json:"tripData,omitempty"`
}

// Activity is a single itinerary entry. It has no identity beyond its
// position within a day.
type Activity struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Cost        string `json:"cost,omitempty"`
}

// TripDay is an ordered list of activities under a day title.
type TripDay struct {
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Trip is a structured itinerary. Days are ordered ascending, one entry
// per itinerary day. The duration string and the day count are not
// cross-validated.
type Trip struct {
	Destination string    `json:"destination"`
	Duration    string    `json:"duration"`
	TravelType  string    `json:"travelType"`
	Days        []TripDay `json:"days"`
	Notes       []string  `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks a trip received from an external edge (parsed text or
// a share payload). A valid trip has a destination and at least one day
// with at least one activity each.
func (t *Trip) Validate() error {
	if t == nil {
		return fmt.Errorf("trip is nil")
	}
	if t.Destination == "" {
		return fmt.Errorf("trip destination is required")
	}
	if len(t.Days) == 0 {
		return fmt.Errorf("trip has no days")
	}
	for i, day := range t.Days {
		if len(day.Activities) == 0 {
			return fmt.Errorf("day %d has no activities", i+1)
		}
	}
	return nil
}

// LocationPoint is a map-plottable point derived from one activity. It
// is never authored directly and must be recomputed whenever the trip
// that produced it changes.
type LocationPoint struct {
	Name        string  `json:"name"`
	Address     string  `json:"address,omitempty"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	Day         int     `json:"day"`   // 1-based itinerary day
	Order       int     `json:"order"` // 1-based position within the day
	Description string  `json:"description,omitempty"`
}

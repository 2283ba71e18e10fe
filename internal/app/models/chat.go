package models

// ResponseSource tells the client whether a reply came from the
// external backend or the simulator. The concrete provider behind
// "external" is an operator concern, not part of the wire contract.
type ResponseSource string

const (
	SourceExternal  ResponseSource = "external"
	SourceSimulated ResponseSource = "simulated"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply for one chat turn. TripData is nil when the
// reply contained no extractable itinerary.
type ChatResponse struct {
	Content  string         `json:"content"`
	TripData *Trip          `json:"tripData"`
	Source   ResponseSource `json:"source"`
}

// SaveTripRequest is the body of POST /api/trips/save.
type SaveTripRequest struct {
	Trip *Trip `json:"trip"`
}

// SaveTripResponse carries the stateless share link for a saved trip.
type SaveTripResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	ShareURL string `json:"shareUrl,omitempty"`
}

// SelectLocationRequest is the body of POST /api/map/select.
type SelectLocationRequest struct {
	Name string `json:"name"`
}

// ActiveDayRequest is the body of POST /api/map/day. A nil day clears
// the filter.
type ActiveDayRequest struct {
	Day *int `json:"day"`
}

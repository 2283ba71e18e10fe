package trips

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tripmind/tripmind/internal/app/models"
)

// ShareLink encodes a trip into a stateless share URL: the full trip
// rides in the query string, nothing is persisted server-side. origin is
// the scheme://host the link should open on.
func ShareLink(origin string, trip *models.Trip) (string, error) {
	if err := trip.Validate(); err != nil {
		return "", fmt.Errorf("share trip: %w", err)
	}

	payload, err := json.Marshal(trip)
	if err != nil {
		return "", fmt.Errorf("encode trip: %w", err)
	}

	origin = strings.TrimRight(origin, "/")
	return origin + "/share/?data=" + url.QueryEscape(string(payload)), nil
}

// DecodeShared reverses ShareLink's data parameter back into a trip,
// revalidating it: a share link is an external edge like any other.
func DecodeShared(data string) (*models.Trip, error) {
	raw, err := url.QueryUnescape(data)
	if err != nil {
		return nil, fmt.Errorf("decode share payload: %w", err)
	}

	var trip models.Trip
	if err := json.Unmarshal([]byte(raw), &trip); err != nil {
		return nil, fmt.Errorf("decode share payload: %w", err)
	}
	if err := trip.Validate(); err != nil {
		return nil, fmt.Errorf("shared trip invalid: %w", err)
	}
	return &trip, nil
}

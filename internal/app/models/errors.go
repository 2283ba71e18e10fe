package models

import "github.com/pkg/errors"

// Error taxonomy for the chat pipeline. ErrBackendUnavailable is
// recovered internally and never reaches the client; the rest map to
// HTTP statuses at the handler edge.
var (
	// ErrInvalidInput covers malformed or missing user input (HTTP 400).
	ErrInvalidInput = errors.New("invalid input")

	// ErrBackendUnavailable marks any external chat API failure. Callers
	// fall back to the simulator and must not surface this to the user.
	ErrBackendUnavailable = errors.New("chat backend unavailable")

	// ErrMapInit marks a failed map/tile initialization. Surfaced to the
	// user with a capped retry affordance.
	ErrMapInit = errors.New("map initialization failed")
)

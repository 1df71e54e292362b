package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrTripNotFound        = errors.New("trip not found")
	ErrNoFlightsFound      = errors.New("no flights found")
	ErrAirportCodeNotFound = errors.New("airport code not found")
)

// UpstreamError carries an error reported by the flight search aggregator
// itself. Normalization never runs when the upstream reports failure.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("flight search upstream error: %s", e.Message)
}

// Validation failure kinds for AI itinerary responses.
const (
	ValidationEmptyResponse  = "EmptyResponse"
	ValidationMalformedJson  = "MalformedJson"
	ValidationSchemaMismatch = "SchemaMismatch"
)

// ItineraryValidationError is returned when raw model output cannot be turned
// into a usable itinerary. Raw always holds the original response text
// unmodified so callers can surface it for debugging.
type ItineraryValidationError struct {
	Kind string
	Raw  string
	Err  error
}

func (e *ItineraryValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("itinerary validation failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("itinerary validation failed (%s)", e.Kind)
}

func (e *ItineraryValidationError) Unwrap() error {
	return e.Err
}

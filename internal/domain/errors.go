package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantExists   = errors.New("participant already registered")
	ErrInvalidTransition   = errors.New("transition not allowed from current status")
	ErrNotCreator          = errors.New("only the event creator can perform this action")
	ErrNotParticipant      = errors.New("only the participant can perform this action")
)

// NetworkError is a transport-level failure: the request never completed or
// the server answered with a 5xx. Not retried automatically.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthorizationError means the acting user lacks permission for the
// transition. Message is the server's text, surfaced verbatim.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// ValidationError is a 4xx rejection of the transition itself, e.g. acting
// on a record in a state that forbids the action server-side.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// MalformedResponseError records a 2xx response whose body could not be
// parsed (empty, truncated, or wrong content type). The mutation is assumed
// to have applied server-side; callers log this and keep going.
type MalformedResponseError struct {
	StatusCode  int
	URL         string
	ContentType string
	Err         error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unparsable response from %s (status=%d, content-type=%q): %v",
		e.URL, e.StatusCode, e.ContentType, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// RoutingError marks a notification payload that cannot be delivered because
// it lacks a usable recipient id. Logged and discarded, never propagated.
type RoutingError struct {
	Type    string
	EventID uint
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("notification payload without recipient (type=%s, event=%d)", e.Type, e.EventID)
}

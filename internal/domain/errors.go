package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthError reports a rejected login. Message carries the raw server body
// when present, else the status reason phrase.
type AuthError struct {
	Status  int
	Message string
	Err     error
}

func (e AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "authentication failed"
}

func (e AuthError) Unwrap() error { return e.Err }

type RegistrationError struct {
	Status  int
	Message string
	Err     error
}

func (e RegistrationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "registration failed"
}

func (e RegistrationError) Unwrap() error { return e.Err }

// InvalidResponseError means a 2xx body matched none of the accepted shapes.
type InvalidResponseError struct {
	Endpoint string
	Err      error
}

func (e InvalidResponseError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("invalid response format from %s", e.Endpoint)
	}
	return "invalid response format"
}

func (e InvalidResponseError) Unwrap() error { return e.Err }

type ProfileError struct {
	Status  int
	Message string
	Err     error
}

func (e ProfileError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "profile update failed"
}

func (e ProfileError) Unwrap() error { return e.Err }

type SearchError struct {
	Status  int
	Message string
	Err     error
}

func (e SearchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "tour search failed"
}

func (e SearchError) Unwrap() error { return e.Err }

type BookingError struct {
	Status  int
	Message string
	Err     error
}

func (e BookingError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "booking failed"
}

func (e BookingError) Unwrap() error { return e.Err }

// DecodeError reports malformed JSON or an unparseable date. Value holds the
// offending input when known.
type DecodeError struct {
	Value string
	Err   error
}

func (e DecodeError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("cannot decode %q", e.Value)
	}
	if e.Err != nil {
		return "decode failed: " + e.Err.Error()
	}
	return "decode failed"
}

func (e DecodeError) Unwrap() error { return e.Err }

// TimeoutError wraps a transport-level timeout or connection failure.
type TimeoutError struct {
	Err error
}

func (e TimeoutError) Error() string {
	if e.Err != nil {
		return "request timed out: " + e.Err.Error()
	}
	return "request timed out"
}

func (e TimeoutError) Unwrap() error { return e.Err }

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}

func IsRegistration(err error) bool {
	var target RegistrationError
	return errors.As(err, &target)
}

func IsInvalidResponse(err error) bool {
	var target InvalidResponseError
	return errors.As(err, &target)
}

func IsProfile(err error) bool {
	var target ProfileError
	return errors.As(err, &target)
}

func IsSearch(err error) bool {
	var target SearchError
	return errors.As(err, &target)
}

func IsBooking(err error) bool {
	var target BookingError
	return errors.As(err, &target)
}

func IsDecode(err error) bool {
	var target DecodeError
	return errors.As(err, &target)
}

func IsTimeout(err error) bool {
	var target TimeoutError
	return errors.As(err, &target)
}

// ServerMessage picks the user-facing message for a non-2xx response:
// the raw body when present, else the standard reason phrase.
func ServerMessage(status int, body []byte) string {
	if len(body) > 0 {
		return string(body)
	}
	return http.StatusText(status)
}

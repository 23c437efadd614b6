package api

import (
	"errors"
	"fmt"
	"strings"
)

// APIError is the single error type the transport layer surfaces for failed
// requests. Message is already user-facing; Status is zero when no HTTP
// response was received (network failure or timeout).
type APIError struct {
	Status  int
	Code    string
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	return e.Message
}

// UnsupportedError marks a client method whose backend endpoint is planned
// but not implemented yet. Callers are expected to branch on it explicitly
// via errors.As or IsUnsupported.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not implemented in the backend yet. This feature will be available in a future update.", e.Feature)
}

// IsUnsupported reports whether err wraps an UnsupportedError.
func IsUnsupported(err error) bool {
	var unsupported *UnsupportedError
	return errors.As(err, &unsupported)
}

// errorBody is the error payload shape the backend responds with.
type errorBody struct {
	Message string   `json:"message"`
	Code    string   `json:"code"`
	Errors  []string `json:"errors"`
}

// userMessage translates an HTTP failure into the alert text the app shows.
func userMessage(status int, body errorBody) string {
	switch {
	case status == 401:
		return "Your session has expired. Please log in again."
	case status == 403:
		return "You do not have permission to perform this action."
	case status == 404:
		return "The requested resource was not found."
	case status == 422:
		if len(body.Errors) > 0 {
			return strings.Join(body.Errors, "\n")
		}
		return "Validation failed. Please check your input."
	case status == 429:
		return "Too many requests. Please try again later."
	case status >= 500:
		return "Something went wrong on our end. Please try again later."
	case body.Message != "":
		return body.Message
	default:
		return "An unexpected error occurred."
	}
}

// networkMessage is used when no HTTP response was received at all.
const networkMessage = "Please check your internet connection and try again."

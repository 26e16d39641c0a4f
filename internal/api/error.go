package api

import (
	"errors"
	"fmt"
	"net"
	"os"
)

// Error is the failure of a single backend request: a transport error, a
// timeout, or a non-2xx response. Message carries the backend's
// user-displayable text when the error payload provided one.
type Error struct {
	// Status is the HTTP status code, 0 for transport failures.
	Status int
	// Message is the backend-supplied error message, if any.
	Message string
	// URL is the full request URL.
	URL string
	// Err is the underlying transport or decode error, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	case e.Status != 0:
		return fmt.Sprintf("api: request to %s failed with status %d", e.URL, e.Status)
	default:
		return fmt.Sprintf("api: request to %s failed: %v", e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Timeout reports whether the request failed by exceeding its deadline.
func (e *Error) Timeout() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(e.Err, os.ErrDeadlineExceeded)
}

// IsStatus reports whether err is an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

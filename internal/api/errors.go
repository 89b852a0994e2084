package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches any 404 answer
	ErrNotFound = errors.New("resource not found")
	// ErrMalformedResponse is returned when a 2xx body does not decode into a valid model
	ErrMalformedResponse = errors.New("malformed response")
	// ErrTransport is returned when a request produced no response at all
	ErrTransport = errors.New("transport failure")
)

// StatusError describes a non-2xx answer from the API
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match a 404
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

package api

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested resource does not exist on the backend
var ErrNotFound = errors.New("bookhub API: resource not found")

// APIError represents a non-2xx response from the Bookhub API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Bookhub API error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("Bookhub API error: HTTP %d: %s", e.StatusCode, e.Message)
}

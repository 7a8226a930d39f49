package faunadex

import "fmt"

// APIError is returned for any non-2xx response from the service.
// Use errors.As() to inspect the status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("faunadex: server returned %d: %s", e.StatusCode, e.Message)
}

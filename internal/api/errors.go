package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors matched by StatusError.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError represents a non-2xx response from the app service.
type StatusError struct {
	Operation  string // download or upload
	AppID      string
	FileType   string
	StatusCode int
	Body       string // trimmed response body, if any
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s of %s for app %s failed: %d %s",
		e.Operation, e.FileType, e.AppID, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is reports whether the status code corresponds to target.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

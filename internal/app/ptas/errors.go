package ptas

import (
	"fmt"
	"net/http"
)

// Error codes carried by *Error.
const (
	CodeNotFound         = "PTA_NOT_FOUND"
	CodeInvalidPageToken = "INVALID_PAGE_TOKEN"
	CodeBackendFailure   = "BACKEND_FAILURE"
)

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Code == "" {
		return fmt.Sprintf("app error (status=%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsNotFound reports whether e is the not-found kind.
func (e *Error) IsNotFound() bool {
	return e != nil && e.Status == http.StatusNotFound
}

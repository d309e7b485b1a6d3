package api

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// ErrNotFound indicates an entity id was absent from a detail fetch or list.
// Wrap it with the entity kind and id for context:
//
//	fmt.Errorf("video %s: %w", id, api.ErrNotFound)
var ErrNotFound = errors.New("not found")

// APIError carries the remote-provided error code and message for a non-2xx
// response, when they were parseable.
type APIError struct {
	// Code is the HTTP status code reported by the API.
	Code int
	// Message is the remote-provided error message, if any.
	Message string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the API error.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("youtube api error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("youtube api error %d: %v", e.Code, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *APIError) Unwrap() error { return e.Err }

// wrapError maps errors from the API client library into *APIError where the
// remote error detail is parseable, and passes other errors through.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{Code: gerr.Code, Message: gerr.Message, Err: err}
	}
	return err
}

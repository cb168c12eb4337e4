package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingConfig indicates required connection settings are absent.
	// It is raised before any remote operation is attempted.
	ErrMissingConfig = errors.New("missing required configuration")

	// ErrUnauthorized indicates the remote service rejected the credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// RemoteError is a structured rejection returned by the issue tracker.
type RemoteError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Messages are the service's general error messages, in order.
	Messages []string

	// FieldErrors maps a field identifier to the message reported for it.
	FieldErrors map[string]string

	// Message is the free-text message some endpoints return instead.
	Message string
}

// Error joins every server-reported message: general messages first,
// then "key: message" per field, then the free-text message.
func (e *RemoteError) Error() string {
	parts := make([]string, 0, len(e.Messages)+len(e.FieldErrors)+1)
	parts = append(parts, e.Messages...)

	keys := make([]string, 0, len(e.FieldErrors))
	for k := range e.FieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.FieldErrors[k]))
	}

	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return strings.Join(parts, "; ")
}

// Is maps authentication and lookup statuses onto the domain sentinels.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrUnauthorized:
		return e.StatusCode == 401 || e.StatusCode == 403
	default:
		return false
	}
}

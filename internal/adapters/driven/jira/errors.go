package jira

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

// Jira-specific errors.
var (
	// ErrBaseURLRequired indicates the client was built without a site URL.
	ErrBaseURLRequired = errors.New("jira: base URL is required")

	// ErrTokenRequired indicates the client was built without a token.
	ErrTokenRequired = errors.New("jira: API token is required")

	// ErrEmailRequired indicates basic auth was selected without an email.
	ErrEmailRequired = errors.New("jira: email is required for basic auth")
)

// RateLimitError represents a 429 response.
type RateLimitError struct {
	ResetAt time.Time
	Limit   int
}

func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "jira: rate limit exceeded"
	}
	return fmt.Sprintf("jira: rate limit exceeded, retry after %s", e.ResetAt.Format(time.RFC3339))
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// errorBody is the error envelope Jira returns with non-2xx responses.
type errorBody struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
	Message       string            `json:"message"`
}

// decodeError builds a *domain.RemoteError from a failed response body.
// Bodies that are not Jira's JSON envelope leave only the status.
func decodeError(status int, body []byte) *domain.RemoteError {
	remote := &domain.RemoteError{StatusCode: status}

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err != nil {
		return remote
	}

	remote.Messages = envelope.ErrorMessages
	if len(envelope.Errors) > 0 {
		remote.FieldErrors = envelope.Errors
	}
	remote.Message = envelope.Message
	return remote
}

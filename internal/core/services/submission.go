package services

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
	"github.com/custodia-labs/jira-worker/internal/logger"
)

// RejectionKind classifies a failed submission.
type RejectionKind int

const (
	// Unclassified failures are terminal.
	Unclassified RejectionKind = iota

	// FieldRejected failures name fields the deployment does not accept.
	FieldRejected
)

// Rejection is the classification of a submission failure.
type Rejection struct {
	Kind RejectionKind

	// Keys are the rejected field identifiers, sorted. Set for FieldRejected.
	Keys []string
}

// fieldErrorHints mark a per-field message as "this field is not usable here".
var fieldErrorHints = []string{"field", "unknown", "not supported"}

// ClassifyRejection inspects a submission error. Only a 400 response with
// per-field messages mentioning an unusable field is a FieldRejected;
// transport failures and everything else are Unclassified.
func ClassifyRejection(err error) Rejection {
	var remote *domain.RemoteError
	if !errors.As(err, &remote) || remote.StatusCode != http.StatusBadRequest {
		return Rejection{Kind: Unclassified}
	}

	var keys []string
	for key, msg := range remote.FieldErrors {
		lower := strings.ToLower(msg)
		for _, hint := range fieldErrorHints {
			if strings.Contains(lower, hint) {
				keys = append(keys, key)
				break
			}
		}
	}
	if len(keys) == 0 {
		return Rejection{Kind: Unclassified}
	}

	sort.Strings(keys)
	return Rejection{Kind: FieldRejected, Keys: keys}
}

// Resolver submits payloads and repairs field rejections with a single
// resubmission that omits the rejected fields. Custom fields differ per
// installation, so optional enrichment fields are dropped rather than
// failing the whole request.
type Resolver struct{}

// NewResolver creates a new submission resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// CreateFunc performs one issue creation request.
type CreateFunc func(ctx context.Context, fields domain.FieldMapping) (*domain.CreatedIssue, error)

// UpdateFunc performs one issue edit request.
type UpdateFunc func(ctx context.Context, payload domain.UpdatePayload) (*domain.UpdatedIssue, error)

// Create submits a creation field set. The input mapping is not modified.
func (r *Resolver) Create(
	ctx context.Context,
	fields domain.FieldMapping,
	submit CreateFunc,
) (*domain.CreatedIssue, error) {
	created, err := submit(ctx, fields)
	if err == nil {
		return created, nil
	}

	rejection := ClassifyRejection(err)
	if rejection.Kind != FieldRejected {
		return nil, err
	}

	r.logRetry(rejection.Keys)
	return submit(ctx, fields.Without(rejection.Keys...))
}

// Update submits an edit payload. Rejected keys are removed from both the
// flat field set and the operation-style update map.
func (r *Resolver) Update(
	ctx context.Context,
	payload domain.UpdatePayload,
	submit UpdateFunc,
) (*domain.UpdatedIssue, error) {
	updated, err := submit(ctx, payload)
	if err == nil {
		return updated, nil
	}

	rejection := ClassifyRejection(err)
	if rejection.Kind != FieldRejected {
		return nil, err
	}

	r.logRetry(rejection.Keys)
	return submit(ctx, payload.Without(rejection.Keys...))
}

func (r *Resolver) logRetry(keys []string) {
	l := logger.With("submission", uuid.NewString(), "fields", strings.Join(keys, ","))
	l.Warn().Msg("remote rejected fields, resubmitting without them")
}

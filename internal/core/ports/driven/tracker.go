package driven

import (
	"context"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

// IssueTracker is the remote issue-tracking service.
//
// Each call is a single synchronous request. Rejections carry a
// *domain.RemoteError; transport failures are returned as plain errors.
type IssueTracker interface {
	// CreateIssue submits a flat field set and returns the new issue.
	CreateIssue(ctx context.Context, fields domain.FieldMapping) (*domain.CreatedIssue, error)

	// UpdateIssue edits an existing issue.
	UpdateIssue(ctx context.Context, key string, payload domain.UpdatePayload) (*domain.UpdatedIssue, error)

	// GetIssue reads an issue by key.
	GetIssue(ctx context.Context, key string) (*domain.Issue, error)

	// SearchProjects lists accessible projects, filtered by query when non-empty.
	SearchProjects(ctx context.Context, query string) ([]domain.Project, error)

	// GetProject reads a project by key.
	GetProject(ctx context.Context, key string) (*domain.Project, error)

	// ListIssueTypes returns the issue types of a project by project ID.
	ListIssueTypes(ctx context.Context, projectID string) ([]domain.IssueType, error)

	// AddComment posts a structured-document comment on an issue.
	AddComment(ctx context.Context, key string, body *domain.Document) (*domain.Comment, error)
}

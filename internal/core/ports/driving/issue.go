package driving

import (
	"context"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

// IssueService files and edits issues in the remote tracker.
type IssueService interface {
	// CreateIssue creates an issue. ProjectKey and Summary are required.
	CreateIssue(ctx context.Context, fields domain.IssueFields) (*domain.CreatedIssue, error)

	// UpdateIssue edits the supplied attributes of an existing issue.
	UpdateIssue(ctx context.Context, key string, fields domain.IssueFields) (*domain.UpdatedIssue, error)

	// AddComment converts a Markdown body and posts it as a comment.
	AddComment(ctx context.Context, key, body string) (*domain.Comment, error)

	// GetIssue reads an issue by key.
	GetIssue(ctx context.Context, key string) (*domain.Issue, error)

	// ListProjects lists accessible projects, optionally filtered.
	ListProjects(ctx context.Context, query string) ([]domain.Project, error)

	// GetIssueTypes lists the issue types available in a project.
	GetIssueTypes(ctx context.Context, projectKey string) ([]domain.IssueType, error)
}

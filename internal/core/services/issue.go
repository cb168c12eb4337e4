package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driven"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driving"
	"github.com/custodia-labs/jira-worker/internal/logger"
)

// Ensure IssueService implements the interface.
var _ driving.IssueService = (*IssueService)(nil)

// IssueService files and edits issues through the remote tracker.
type IssueService struct {
	tracker          driven.IssueTracker
	normaliser       driven.Normaliser
	mapper           *FieldMapper
	resolver         *Resolver
	defaultIssueType string
}

// NewIssueService creates a new issue service. An empty defaultIssueType
// leaves the issue type unset when the caller supplies none.
func NewIssueService(
	tracker driven.IssueTracker,
	normaliser driven.Normaliser,
	mapper *FieldMapper,
	defaultIssueType string,
) *IssueService {
	return &IssueService{
		tracker:          tracker,
		normaliser:       normaliser,
		mapper:           mapper,
		resolver:         NewResolver(),
		defaultIssueType: defaultIssueType,
	}
}

// CreateIssue creates an issue in the given project.
func (s *IssueService) CreateIssue(ctx context.Context, fields domain.IssueFields) (*domain.CreatedIssue, error) {
	if fields.ProjectKey == nil || *fields.ProjectKey == "" {
		return nil, fmt.Errorf("%w: project key is required", domain.ErrInvalidInput)
	}
	if fields.Summary == nil || *fields.Summary == "" {
		return nil, fmt.Errorf("%w: summary is required", domain.ErrInvalidInput)
	}
	if (fields.IssueType == nil || *fields.IssueType == "") && s.defaultIssueType != "" {
		issueType := s.defaultIssueType
		fields.IssueType = &issueType
	}

	logger.Section("Create Issue")
	mapping := s.mapper.Map(fields, true)
	logger.Debug("creating issue in %s with %d fields", *fields.ProjectKey, len(mapping))

	created, err := s.resolver.Create(ctx, mapping, s.tracker.CreateIssue)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	logger.Info("created issue %s", created.Key)
	return created, nil
}

// UpdateIssue edits the supplied attributes of an existing issue.
func (s *IssueService) UpdateIssue(
	ctx context.Context,
	key string,
	fields domain.IssueFields,
) (*domain.UpdatedIssue, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: issue key is required", domain.ErrInvalidInput)
	}

	logger.Section("Update Issue")
	payload := domain.UpdatePayload{Fields: s.mapper.Map(fields, false)}
	logger.Debug("updating issue %s with %d fields", key, len(payload.Fields))

	submit := func(ctx context.Context, p domain.UpdatePayload) (*domain.UpdatedIssue, error) {
		return s.tracker.UpdateIssue(ctx, key, p)
	}
	updated, err := s.resolver.Update(ctx, payload, submit)
	if err != nil {
		return nil, fmt.Errorf("failed to update issue %s: %w", key, err)
	}

	return updated, nil
}

// AddComment converts a Markdown body and posts it on an issue.
func (s *IssueService) AddComment(ctx context.Context, key, body string) (*domain.Comment, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: issue key is required", domain.ErrInvalidInput)
	}

	comment, err := s.tracker.AddComment(ctx, key, s.normaliser.Normalise(body))
	if err != nil {
		return nil, fmt.Errorf("failed to add comment to %s: %w", key, err)
	}
	return comment, nil
}

// GetIssue reads an issue by key.
func (s *IssueService) GetIssue(ctx context.Context, key string) (*domain.Issue, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: issue key is required", domain.ErrInvalidInput)
	}

	issue, err := s.tracker.GetIssue(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue %s: %w", key, err)
	}
	return issue, nil
}

// ListProjects lists accessible projects, optionally filtered.
func (s *IssueService) ListProjects(ctx context.Context, query string) ([]domain.Project, error) {
	projects, err := s.tracker.SearchProjects(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return projects, nil
}

// GetIssueTypes resolves the project and lists its issue types.
func (s *IssueService) GetIssueTypes(ctx context.Context, projectKey string) ([]domain.IssueType, error) {
	if projectKey == "" {
		return nil, fmt.Errorf("%w: project key is required", domain.ErrInvalidInput)
	}

	project, err := s.tracker.GetProject(ctx, projectKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue types for %s: %w", projectKey, err)
	}

	types, err := s.tracker.ListIssueTypes(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue types for %s: %w", projectKey, err)
	}
	return types, nil
}

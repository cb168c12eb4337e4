package services

import (
	"context"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

// mockTracker is a scripted implementation of driven.IssueTracker.
// Create and update responses are consumed in order, one per call.
type mockTracker struct {
	createErrs []error
	updateErrs []error

	createCalls []domain.FieldMapping
	updateCalls []domain.UpdatePayload
	updateKeys  []string

	issue      *domain.Issue
	projects   []domain.Project
	project    *domain.Project
	issueTypes []domain.IssueType
	comment    *domain.Comment
	err        error

	commentKey    string
	commentBody   *domain.Document
	searchQuery   string
	typeProjectID string
}

func (m *mockTracker) CreateIssue(_ context.Context, fields domain.FieldMapping) (*domain.CreatedIssue, error) {
	m.createCalls = append(m.createCalls, fields)
	i := len(m.createCalls) - 1
	if i < len(m.createErrs) && m.createErrs[i] != nil {
		return nil, m.createErrs[i]
	}
	return &domain.CreatedIssue{ID: "10001", Key: "PROJ-1", URL: "https://jira.test/browse/PROJ-1"}, nil
}

func (m *mockTracker) UpdateIssue(
	_ context.Context,
	key string,
	payload domain.UpdatePayload,
) (*domain.UpdatedIssue, error) {
	m.updateCalls = append(m.updateCalls, payload)
	m.updateKeys = append(m.updateKeys, key)
	i := len(m.updateCalls) - 1
	if i < len(m.updateErrs) && m.updateErrs[i] != nil {
		return nil, m.updateErrs[i]
	}
	return &domain.UpdatedIssue{Key: key, URL: "https://jira.test/browse/" + key}, nil
}

func (m *mockTracker) GetIssue(_ context.Context, key string) (*domain.Issue, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.issue != nil {
		return m.issue, nil
	}
	return &domain.Issue{Key: key}, nil
}

func (m *mockTracker) SearchProjects(_ context.Context, query string) ([]domain.Project, error) {
	m.searchQuery = query
	return m.projects, m.err
}

func (m *mockTracker) GetProject(_ context.Context, _ string) (*domain.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

func (m *mockTracker) ListIssueTypes(_ context.Context, projectID string) ([]domain.IssueType, error) {
	m.typeProjectID = projectID
	return m.issueTypes, m.err
}

func (m *mockTracker) AddComment(_ context.Context, key string, body *domain.Document) (*domain.Comment, error) {
	m.commentKey = key
	m.commentBody = body
	if m.err != nil {
		return nil, m.err
	}
	return m.comment, nil
}

// fieldRejection builds a 400 response naming unknown fields.
func fieldRejection(fields map[string]string) *domain.RemoteError {
	return &domain.RemoteError{StatusCode: 400, FieldErrors: fields}
}

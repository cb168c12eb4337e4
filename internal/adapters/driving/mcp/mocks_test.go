package mcp

import (
	"context"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

// mockIssueService is a mock implementation of driving.IssueService.
// It records the last attributes it was called with.
type mockIssueService struct {
	created    *domain.CreatedIssue
	updated    *domain.UpdatedIssue
	comment    *domain.Comment
	issue      *domain.Issue
	projects   []domain.Project
	issueTypes []domain.IssueType
	err        error

	lastFields domain.IssueFields
	lastKey    string
	lastBody   string
	lastQuery  string
}

func (m *mockIssueService) CreateIssue(_ context.Context, fields domain.IssueFields) (*domain.CreatedIssue, error) {
	m.lastFields = fields
	return m.created, m.err
}

func (m *mockIssueService) UpdateIssue(
	_ context.Context,
	key string,
	fields domain.IssueFields,
) (*domain.UpdatedIssue, error) {
	m.lastKey = key
	m.lastFields = fields
	return m.updated, m.err
}

func (m *mockIssueService) AddComment(_ context.Context, key, body string) (*domain.Comment, error) {
	m.lastKey = key
	m.lastBody = body
	return m.comment, m.err
}

func (m *mockIssueService) GetIssue(_ context.Context, key string) (*domain.Issue, error) {
	m.lastKey = key
	return m.issue, m.err
}

func (m *mockIssueService) ListProjects(_ context.Context, query string) ([]domain.Project, error) {
	m.lastQuery = query
	return m.projects, m.err
}

func (m *mockIssueService) GetIssueTypes(_ context.Context, projectKey string) ([]domain.IssueType, error) {
	m.lastKey = projectKey
	return m.issueTypes, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	doc *domain.Document
}

func (m *mockDocumentService) Convert(_ string) *domain.Document {
	if m.doc == nil {
		return domain.NewDocument(nil)
	}
	return m.doc
}

func (m *mockDocumentService) MapFields(_ domain.IssueFields, _ bool) domain.FieldMapping {
	return domain.FieldMapping{}
}

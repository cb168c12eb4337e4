package jira

import (
	"context"
	"net/http"
	"net/url"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

type projectSearchResponse struct {
	Values []domain.Project `json:"values"`
	Total  int              `json:"total"`
}

// SearchProjects lists the projects visible to the caller, filtered by
// query when it is non-empty.
func (c *Client) SearchProjects(ctx context.Context, query string) ([]domain.Project, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}

	var page projectSearchResponse
	if err := c.do(ctx, http.MethodGet, "/project/search", params, nil, &page); err != nil {
		return nil, err
	}

	if page.Values == nil {
		return []domain.Project{}, nil
	}
	return page.Values, nil
}

// GetProject reads a project by key or id.
func (c *Client) GetProject(ctx context.Context, key string) (*domain.Project, error) {
	var project domain.Project
	if err := c.do(ctx, http.MethodGet, "/project/"+url.PathEscape(key), nil, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListIssueTypes lists the issue types available in a project.
func (c *Client) ListIssueTypes(ctx context.Context, projectID string) ([]domain.IssueType, error) {
	params := url.Values{"projectId": {projectID}}

	var types []domain.IssueType
	if err := c.do(ctx, http.MethodGet, "/issuetype/project", params, nil, &types); err != nil {
		return nil, err
	}

	if types == nil {
		return []domain.IssueType{}, nil
	}
	return types, nil
}

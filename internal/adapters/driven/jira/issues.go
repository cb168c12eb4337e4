package jira

import (
	"context"
	"net/http"
	"net/url"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.IssueTracker = (*Client)(nil)

type createIssueRequest struct {
	Fields domain.FieldMapping `json:"fields"`
}

type issueResponse struct {
	ID     string         `json:"id"`
	Key    string         `json:"key"`
	Fields map[string]any `json:"fields,omitempty"`
}

type commentRequest struct {
	Body *domain.Document `json:"body"`
}

type commentResponse struct {
	ID string `json:"id"`
}

// CreateIssue submits a new issue.
func (c *Client) CreateIssue(ctx context.Context, fields domain.FieldMapping) (*domain.CreatedIssue, error) {
	if fields == nil {
		fields = domain.FieldMapping{}
	}

	var created issueResponse
	if err := c.do(ctx, http.MethodPost, "/issue", nil, createIssueRequest{Fields: fields}, &created); err != nil {
		return nil, err
	}

	return &domain.CreatedIssue{
		ID:  created.ID,
		Key: created.Key,
		URL: c.browseURL(created.Key),
	}, nil
}

// UpdateIssue edits an existing issue. Jira answers 204 with no body.
func (c *Client) UpdateIssue(
	ctx context.Context,
	key string,
	payload domain.UpdatePayload,
) (*domain.UpdatedIssue, error) {
	if err := c.do(ctx, http.MethodPut, "/issue/"+url.PathEscape(key), nil, payload, nil); err != nil {
		return nil, err
	}

	return &domain.UpdatedIssue{
		Key: key,
		URL: c.browseURL(key),
	}, nil
}

// GetIssue reads an issue with all its fields.
func (c *Client) GetIssue(ctx context.Context, key string) (*domain.Issue, error) {
	var issue issueResponse
	if err := c.do(ctx, http.MethodGet, "/issue/"+url.PathEscape(key), nil, nil, &issue); err != nil {
		return nil, err
	}

	return &domain.Issue{
		ID:     issue.ID,
		Key:    issue.Key,
		URL:    c.browseURL(issue.Key),
		Fields: issue.Fields,
	}, nil
}

// AddComment posts an ADF comment body on an issue.
func (c *Client) AddComment(ctx context.Context, key string, body *domain.Document) (*domain.Comment, error) {
	if body == nil {
		body = domain.NewDocument(nil)
	}

	var comment commentResponse
	path := "/issue/" + url.PathEscape(key) + "/comment"
	if err := c.do(ctx, http.MethodPost, path, nil, commentRequest{Body: body}, &comment); err != nil {
		return nil, err
	}

	return &domain.Comment{
		ID:  comment.ID,
		URL: c.browseURL(key) + "?focusedCommentId=" + url.QueryEscape(comment.ID),
	}, nil
}

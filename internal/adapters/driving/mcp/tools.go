package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

// IssueAttributes are the optional attributes shared by create_issue and
// update_issue. Absent values are left out of the submission; an empty
// list is sent as an empty list.
type IssueAttributes struct {
	IssueType          *string  `json:"issueType,omitempty" jsonschema:"issue type name (create defaults to the configured type, usually Story)"`
	Description        *string  `json:"description,omitempty" jsonschema:"issue description (supports Markdown)"`
	AcceptanceCriteria *string  `json:"acceptanceCriteria,omitempty" jsonschema:"acceptance criteria, appended to the description under its own heading"`
	Priority           *string  `json:"priority,omitempty" jsonschema:"priority: Highest, High, Medium, Low or Lowest"`
	Assignee           *string  `json:"assignee,omitempty" jsonschema:"assignee username or account ID"`
	Reporter           *string  `json:"reporter,omitempty" jsonschema:"reporter username or account ID"`
	Labels             []string `json:"labels,omitempty" jsonschema:"labels to apply"`
	Components         []string `json:"components,omitempty" jsonschema:"component names"`
	FixVersions        []string `json:"fixVersions,omitempty" jsonschema:"fix version names"`
	DueDate            *string  `json:"dueDate,omitempty" jsonschema:"due date in ISO format (YYYY-MM-DD)"`
	StoryPoints        *float64 `json:"storyPoints,omitempty" jsonschema:"story points"`
	EpicLink           *string  `json:"epicLink,omitempty" jsonschema:"epic issue key"`
	Sprint             any      `json:"sprint,omitempty" jsonschema:"sprint ID (number) or name (string)"`
	OriginalEstimate   *string  `json:"originalEstimate,omitempty" jsonschema:"original time estimate, e.g. 2h 30m"`
	Environment        *string  `json:"environment,omitempty" jsonschema:"environment information"`
}

// CreateIssueInput is the input schema for the create_issue tool.
type CreateIssueInput struct {
	ProjectKey string `json:"projectKey" jsonschema:"Jira project key, e.g. PROJ"`
	Summary    string `json:"summary" jsonschema:"issue summary/title"`
	IssueAttributes
}

// UpdateIssueInput is the input schema for the update_issue tool.
type UpdateIssueInput struct {
	IssueKey string  `json:"issueKey" jsonschema:"Jira issue key to update, e.g. PROJ-123"`
	Summary  *string `json:"summary,omitempty" jsonschema:"new summary/title"`
	IssueAttributes
}

// AddCommentInput is the input schema for the add_comment tool.
type AddCommentInput struct {
	IssueKey string `json:"issueKey" jsonschema:"Jira issue key to comment on, e.g. PROJ-123"`
	Body     string `json:"body" jsonschema:"comment body (supports Markdown)"`
}

// GetProjectsInput is the input schema for the get_projects tool.
type GetProjectsInput struct {
	Query string `json:"query,omitempty" jsonschema:"optional filter to search projects by key or name"`
}

// GetProjectsOutput is the output schema for the get_projects tool.
type GetProjectsOutput struct {
	Projects []domain.Project `json:"projects"`
	Count    int              `json:"count"`
}

// GetIssueTypesInput is the input schema for the get_issue_types tool.
type GetIssueTypesInput struct {
	ProjectKey string `json:"projectKey" jsonschema:"Jira project key to fetch issue types for"`
}

// GetIssueTypesOutput is the output schema for the get_issue_types tool.
type GetIssueTypesOutput struct {
	IssueTypes []domain.IssueType `json:"issueTypes"`
}

// GetIssueInput is the input schema for the get_issue tool.
type GetIssueInput struct {
	IssueKey string `json:"issueKey" jsonschema:"Jira issue key, e.g. PROJ-123"`
}

// ConvertMarkdownInput is the input schema for the convert_markdown tool.
type ConvertMarkdownInput struct {
	Markdown string `json:"markdown" jsonschema:"Markdown text to convert"`
}

// ConvertMarkdownOutput is the output schema for the convert_markdown tool.
type ConvertMarkdownOutput struct {
	Document map[string]any `json:"document"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_issue",
		Title:       "Create Jira Issue",
		Description: "Creates a Jira issue. Converts the description Markdown to Atlassian Document Format.",
	}, s.handleCreateIssue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_issue",
		Title:       "Update Jira Issue",
		Description: "Updates fields on an existing Jira issue. Only supplied fields are changed.",
	}, s.handleUpdateIssue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_comment",
		Title:       "Add Comment to Jira Issue",
		Description: "Adds a comment (converted from Markdown) to an existing Jira issue.",
	}, s.handleAddComment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_projects",
		Title:       "Get Jira Projects",
		Description: "Lists accessible Jira projects. Optionally filter by query string.",
	}, s.handleGetProjects)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_issue_types",
		Title:       "Get Jira Issue Types",
		Description: "Lists the issue types available in a Jira project.",
	}, s.handleGetIssueTypes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_issue",
		Title:       "Get Jira Issue",
		Description: "Reads a Jira issue and its fields.",
	}, s.handleGetIssue)

	if s.ports.Documents != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "convert_markdown",
			Title:       "Preview Markdown Conversion",
			Description: "Shows the Atlassian Document Format a Markdown body would be submitted as.",
		}, s.handleConvertMarkdown)
	}
}

func (s *Server) handleCreateIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateIssueInput,
) (*mcp.CallToolResult, domain.CreatedIssue, error) {
	fields, err := input.IssueAttributes.toFields()
	if err != nil {
		return nil, domain.CreatedIssue{}, err
	}
	fields.ProjectKey = &input.ProjectKey
	fields.Summary = &input.Summary

	created, err := s.ports.Issues.CreateIssue(ctx, fields)
	if err != nil {
		return nil, domain.CreatedIssue{}, err
	}
	return nil, *created, nil
}

func (s *Server) handleUpdateIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateIssueInput,
) (*mcp.CallToolResult, domain.UpdatedIssue, error) {
	fields, err := input.IssueAttributes.toFields()
	if err != nil {
		return nil, domain.UpdatedIssue{}, err
	}
	fields.Summary = input.Summary

	updated, err := s.ports.Issues.UpdateIssue(ctx, input.IssueKey, fields)
	if err != nil {
		return nil, domain.UpdatedIssue{}, err
	}
	return nil, *updated, nil
}

func (s *Server) handleAddComment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddCommentInput,
) (*mcp.CallToolResult, domain.Comment, error) {
	comment, err := s.ports.Issues.AddComment(ctx, input.IssueKey, input.Body)
	if err != nil {
		return nil, domain.Comment{}, err
	}
	return nil, *comment, nil
}

func (s *Server) handleGetProjects(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetProjectsInput,
) (*mcp.CallToolResult, GetProjectsOutput, error) {
	projects, err := s.ports.Issues.ListProjects(ctx, input.Query)
	if err != nil {
		return nil, GetProjectsOutput{}, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return nil, GetProjectsOutput{Projects: projects, Count: len(projects)}, nil
}

func (s *Server) handleGetIssueTypes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetIssueTypesInput,
) (*mcp.CallToolResult, GetIssueTypesOutput, error) {
	types, err := s.ports.Issues.GetIssueTypes(ctx, input.ProjectKey)
	if err != nil {
		return nil, GetIssueTypesOutput{}, err
	}
	if types == nil {
		types = []domain.IssueType{}
	}
	return nil, GetIssueTypesOutput{IssueTypes: types}, nil
}

func (s *Server) handleGetIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetIssueInput,
) (*mcp.CallToolResult, domain.Issue, error) {
	issue, err := s.ports.Issues.GetIssue(ctx, input.IssueKey)
	if err != nil {
		return nil, domain.Issue{}, err
	}
	return nil, *issue, nil
}

func (s *Server) handleConvertMarkdown(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ConvertMarkdownInput,
) (*mcp.CallToolResult, ConvertMarkdownOutput, error) {
	raw, err := json.Marshal(s.ports.Documents.Convert(input.Markdown))
	if err != nil {
		return nil, ConvertMarkdownOutput{}, fmt.Errorf("encoding document: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, ConvertMarkdownOutput{}, fmt.Errorf("decoding document: %w", err)
	}
	return nil, ConvertMarkdownOutput{Document: doc}, nil
}

// toFields converts tool input into issue attributes, rejecting values the
// schema cannot express.
func (a IssueAttributes) toFields() (domain.IssueFields, error) {
	if a.Priority != nil && !slices.Contains(domain.Priorities, *a.Priority) {
		return domain.IssueFields{}, fmt.Errorf("%w: priority %q", domain.ErrInvalidInput, *a.Priority)
	}
	switch a.Sprint.(type) {
	case nil, string, float64:
	default:
		return domain.IssueFields{}, fmt.Errorf("%w: sprint must be a number or a string", domain.ErrInvalidInput)
	}

	return domain.IssueFields{
		IssueType:          a.IssueType,
		Description:        a.Description,
		AcceptanceCriteria: a.AcceptanceCriteria,
		Priority:           a.Priority,
		Assignee:           a.Assignee,
		Reporter:           a.Reporter,
		Labels:             a.Labels,
		Components:         a.Components,
		FixVersions:        a.FixVersions,
		DueDate:            a.DueDate,
		StoryPoints:        a.StoryPoints,
		EpicLink:           a.EpicLink,
		Sprint:             a.Sprint,
		OriginalEstimate:   a.OriginalEstimate,
		Environment:        a.Environment,
	}, nil
}

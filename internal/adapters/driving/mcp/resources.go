package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for jira-worker resources.
	uriScheme = "jira://"

	jsonMIMEType = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "projects",
		Name:        "projects",
		Description: "Jira projects visible to the configured account",
		MIMEType:    jsonMIMEType,
	}, s.handleProjectsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "issues/{issueKey}",
		Name:        "issue",
		Description: "A Jira issue and its fields",
		MIMEType:    jsonMIMEType,
	}, s.handleIssueResource)
}

// handleProjectsResource returns every accessible project.
func (s *Server) handleProjectsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	projects, err := s.ports.Issues.ListProjects(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	type projectInfo struct {
		ID   string `json:"id"`
		Key  string `json:"key"`
		Name string `json:"name"`
	}

	infos := make([]projectInfo, len(projects))
	for i, p := range projects {
		infos[i] = projectInfo{ID: p.ID, Key: p.Key, Name: p.Name}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleIssueResource returns a single issue.
func (s *Server) handleIssueResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	key := extractIssueKey(req.Params.URI)
	if key == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	issue, err := s.ports.Issues.GetIssue(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("getting issue: %w", err)
	}

	return jsonResult(req.Params.URI, issue)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     string(data),
		}},
	}, nil
}

// extractIssueKey extracts the issue key from a URI like jira://issues/{issueKey}.
func extractIssueKey(uri string) string {
	const prefix = uriScheme + "issues/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	key := strings.TrimPrefix(uri, prefix)
	if strings.Contains(key, "/") {
		return ""
	}
	return key
}

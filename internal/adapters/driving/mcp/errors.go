// Package mcp provides an MCP (Model Context Protocol) server adapter for
// jira-worker. It lets AI assistants file, edit and comment on Jira issues.
package mcp

import "errors"

// ErrMissingIssueService is returned when the issue service is not provided.
var ErrMissingIssueService = errors.New("mcp: issue service is required")

package mcp

import (
	"github.com/custodia-labs/jira-worker/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Issues files, edits and reads issues.
	Issues driving.IssueService

	// Documents converts Markdown for preview. Optional.
	Documents driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Issues == nil {
		return ErrMissingIssueService
	}
	return nil
}

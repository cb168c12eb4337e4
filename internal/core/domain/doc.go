// Package domain defines the core business entities for jira-worker.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An Atlassian Document Format tree built from markup
//   - IssueFields: Optional attributes of an issue create or update
//   - FieldMapping: The flat field set submitted to Jira
//   - RemoteError: A structured rejection from Jira
//   - Settings: Connection and custom-field configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - IssueTracker: Remote issue-tracking service (Jira REST)
//   - Normaliser: Markup to structured document conversion
//   - ConfigStore: Application configuration
//   - ConfigWatcher: Optional change notification for a ConfigStore
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven

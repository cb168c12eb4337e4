package driving

import "github.com/custodia-labs/jira-worker/internal/core/domain"

// DocumentService converts Markdown into structured documents and
// issue attributes into the field set Jira receives.
type DocumentService interface {
	// Convert turns Markdown into a version 1 document.
	Convert(markup string) *domain.Document

	// MapFields builds the flat field set for the given attributes.
	// The project key is included only when includeProject is set.
	MapFields(fields domain.IssueFields, includeProject bool) domain.FieldMapping
}

package driven

import "github.com/custodia-labs/jira-worker/internal/core/domain"

// Normaliser transforms markup text into a structured document.
// Implementations never fail: unrecognised markup degrades to paragraphs.
type Normaliser interface {
	// Normalise converts markup into a version 1 document.
	Normalise(markup string) *domain.Document
}

package markdown

import (
	"github.com/custodia-labs/jira-worker/internal/core/domain"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser converts Markdown text into Atlassian Document Format.
//
// Supported constructs: fenced code blocks, ATX headings, "-"/"*" bullet
// lists, numbered lists, pipe tables and **strong**, *em*/_em_, `code`
// inline marks. Anything else is kept as paragraph text.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise converts markup into a version 1 document.
func (n *Normaliser) Normalise(markup string) *domain.Document {
	return domain.NewDocument(ParseBlocks(markup))
}

package services

import (
	"github.com/custodia-labs/jira-worker/internal/core/domain"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driven"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService converts Markdown and maps issue attributes.
type DocumentService struct {
	normaliser driven.Normaliser
	mapper     *FieldMapper
}

// NewDocumentService creates a new document service.
func NewDocumentService(normaliser driven.Normaliser, mapper *FieldMapper) *DocumentService {
	return &DocumentService{
		normaliser: normaliser,
		mapper:     mapper,
	}
}

// Convert turns Markdown into a version 1 document.
func (s *DocumentService) Convert(markup string) *domain.Document {
	return s.normaliser.Normalise(markup)
}

// MapFields builds the flat field set for the given attributes.
func (s *DocumentService) MapFields(fields domain.IssueFields, includeProject bool) domain.FieldMapping {
	return s.mapper.Map(fields, includeProject)
}

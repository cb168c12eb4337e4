package services

import (
	"sync/atomic"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driven"
)

// acceptanceCriteriaHeading titles the section appended to descriptions.
const acceptanceCriteriaHeading = "## Acceptance Criteria"

// FieldMapper turns issue attributes into Jira's flat field set.
// It never fails; value validation happens upstream.
type FieldMapper struct {
	normaliser driven.Normaliser
	keys       atomic.Pointer[domain.FieldKeys]
}

// NewFieldMapper creates a mapper using the given custom-field identifiers.
// Empty identifiers fall back to the stock Jira Cloud ones.
func NewFieldMapper(normaliser driven.Normaliser, keys domain.FieldKeys) *FieldMapper {
	m := &FieldMapper{normaliser: normaliser}
	m.SetKeys(keys)
	return m
}

// SetKeys replaces the custom-field identifiers.
// Safe to call while other goroutines are mapping.
func (m *FieldMapper) SetKeys(keys domain.FieldKeys) {
	keys = keys.WithDefaults()
	m.keys.Store(&keys)
}

// Keys returns the custom-field identifiers in use.
func (m *FieldMapper) Keys() domain.FieldKeys {
	return *m.keys.Load()
}

// Map builds the field set. Each supplied attribute produces exactly one
// key; absent attributes produce none. The project key is only written
// when includeProject is set.
func (m *FieldMapper) Map(f domain.IssueFields, includeProject bool) domain.FieldMapping {
	keys := m.Keys()
	fields := domain.FieldMapping{}

	if includeProject && f.ProjectKey != nil && *f.ProjectKey != "" {
		fields["project"] = map[string]any{"key": *f.ProjectKey}
	}

	if f.Summary != nil {
		fields["summary"] = *f.Summary
	}

	if text := descriptionText(f.Description, f.AcceptanceCriteria); text != "" {
		fields["description"] = m.normaliser.Normalise(text)
	}

	if f.IssueType != nil && *f.IssueType != "" {
		fields["issuetype"] = named(*f.IssueType)
	}

	if f.Priority != nil && *f.Priority != "" {
		fields["priority"] = named(*f.Priority)
	}

	if f.Assignee != nil {
		fields["assignee"] = named(*f.Assignee)
	}

	if f.Reporter != nil {
		fields["reporter"] = named(*f.Reporter)
	}

	if f.Labels != nil {
		fields["labels"] = f.Labels
	}

	if f.Components != nil {
		fields["components"] = namedList(f.Components)
	}

	if f.FixVersions != nil {
		fields["fixVersions"] = namedList(f.FixVersions)
	}

	if f.DueDate != nil {
		fields["dueDate"] = *f.DueDate
	}

	if f.StoryPoints != nil {
		fields[keys.StoryPoints] = *f.StoryPoints
	}

	if f.EpicLink != nil {
		fields[keys.EpicLink] = *f.EpicLink
	}

	if f.Sprint != nil {
		fields[keys.Sprint] = f.Sprint
	}

	if f.OriginalEstimate != nil {
		fields["timetracking"] = map[string]any{"originalEstimate": *f.OriginalEstimate}
	}

	if f.Environment != nil {
		fields["environment"] = *f.Environment
	}

	return fields
}

// descriptionText appends acceptance criteria to the description as its
// own section. The blank separator line is only added after existing text.
func descriptionText(description, criteria *string) string {
	var text string
	if description != nil {
		text = *description
	}
	if criteria != nil && *criteria != "" {
		if text != "" {
			text += "\n\n"
		}
		text += acceptanceCriteriaHeading + "\n" + *criteria
	}
	return text
}

func named(name string) map[string]any {
	return map[string]any{"name": name}
}

func namedList(names []string) []map[string]any {
	out := make([]map[string]any, 0, len(names))
	for _, n := range names {
		out = append(out, named(n))
	}
	return out
}

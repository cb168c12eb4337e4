package domain

// IssueFields holds the optional attributes of an issue create or update.
// A nil pointer or nil slice means the attribute was not supplied; an
// empty slice is a supplied, empty list.
type IssueFields struct {
	ProjectKey         *string
	IssueType          *string
	Summary            *string
	Description        *string
	AcceptanceCriteria *string
	Priority           *string
	Assignee           *string
	Reporter           *string
	Labels             []string
	Components         []string
	FixVersions        []string
	DueDate            *string
	StoryPoints        *float64
	EpicLink           *string

	// Sprint is a sprint id (number) or name (string); nil when absent.
	Sprint any

	OriginalEstimate *string
	Environment      *string
}

// Priorities lists the priority names Jira ships with.
var Priorities = []string{"Highest", "High", "Medium", "Low", "Lowest"}

// FieldMapping is the flat field set submitted to the issue tracker.
// Values are strings, numbers, slices or nested maps.
type FieldMapping map[string]any

// Clone returns a shallow copy of the mapping.
func (m FieldMapping) Clone() FieldMapping {
	out := make(FieldMapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Without returns a copy of the mapping with the given keys removed.
func (m FieldMapping) Without(keys ...string) FieldMapping {
	out := m.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// UpdatePayload is the body of an issue edit: plain field values plus
// operation-style updates ({"labels": [{"add": "x"}]}).
type UpdatePayload struct {
	Fields FieldMapping   `json:"fields,omitempty"`
	Update map[string]any `json:"update,omitempty"`
}

// Without returns a copy of the payload with the given keys removed from
// both the field set and the update map.
func (p UpdatePayload) Without(keys ...string) UpdatePayload {
	out := UpdatePayload{}
	if p.Fields != nil {
		out.Fields = p.Fields.Without(keys...)
	}
	if p.Update != nil {
		out.Update = make(map[string]any, len(p.Update))
		for k, v := range p.Update {
			out.Update[k] = v
		}
		for _, k := range keys {
			delete(out.Update, k)
		}
	}
	return out
}

// Project is a Jira project.
type Project struct {
	ID             string `json:"id"`
	Key            string `json:"key"`
	Name           string `json:"name"`
	ProjectTypeKey string `json:"projectTypeKey"`
	Style          string `json:"style,omitempty"`
	IsPrivate      bool   `json:"isPrivate,omitempty"`
}

// IssueType is an issue type available in a project.
type IssueType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Subtask     bool   `json:"subtask"`
	IconURL     string `json:"iconUrl,omitempty"`
}

// Issue is an issue as read back from the tracker.
type Issue struct {
	ID     string         `json:"id"`
	Key    string         `json:"key"`
	URL    string         `json:"url"`
	Fields map[string]any `json:"fields,omitempty"`
}

// CreatedIssue identifies a newly created issue.
type CreatedIssue struct {
	ID  string `json:"id"`
	Key string `json:"key"`
	URL string `json:"url"`
}

// UpdatedIssue identifies an edited issue.
type UpdatedIssue struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Comment identifies a newly added comment.
type Comment struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

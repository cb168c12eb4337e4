package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// AuthMethod selects how requests to the tracker are authenticated.
type AuthMethod string

// Available authentication methods.
const (
	// AuthMethodBasic sends the account email and API token (Jira Cloud).
	AuthMethodBasic AuthMethod = "basic"

	// AuthMethodBearer sends a personal access token (Jira Data Center).
	AuthMethodBearer AuthMethod = "bearer"
)

// IsValid returns true if the auth method is recognised.
func (m AuthMethod) IsValid() bool {
	switch m {
	case AuthMethodBasic, AuthMethodBearer:
		return true
	default:
		return false
	}
}

// RequiresEmail returns true if the method needs an account email.
func (m AuthMethod) RequiresEmail() bool {
	return m == AuthMethodBasic
}

// String returns the string representation.
func (m AuthMethod) String() string {
	return string(m)
}

// Description returns a human-readable description of the method.
func (m AuthMethod) Description() string {
	switch m {
	case AuthMethodBasic:
		return "Basic (email + API token)"
	case AuthMethodBearer:
		return "Bearer (personal access token)"
	default:
		return unknownDescription
	}
}

// FieldKeys holds the custom-field identifiers used for attributes
// Jira has no system field for. They differ between installations.
type FieldKeys struct {
	StoryPoints string
	EpicLink    string
	Sprint      string
}

// DefaultFieldKeys returns the identifiers of a stock Jira Cloud site.
func DefaultFieldKeys() FieldKeys {
	return FieldKeys{
		StoryPoints: "customfield_10016",
		EpicLink:    "customfield_10014",
		Sprint:      "customfield_10020",
	}
}

// WithDefaults fills empty identifiers from DefaultFieldKeys.
func (k FieldKeys) WithDefaults() FieldKeys {
	d := DefaultFieldKeys()
	if k.StoryPoints == "" {
		k.StoryPoints = d.StoryPoints
	}
	if k.EpicLink == "" {
		k.EpicLink = d.EpicLink
	}
	if k.Sprint == "" {
		k.Sprint = d.Sprint
	}
	return k
}

// Settings holds the connection and mapping configuration.
type Settings struct {
	BaseURL           string
	Email             string
	APIToken          string
	AuthMethod        AuthMethod
	Timeout           time.Duration
	RequestsPerSecond float64
	FieldKeys         FieldKeys
	DefaultIssueType  string
}

// DefaultSettings returns settings with every optional value populated.
func DefaultSettings() Settings {
	return Settings{
		AuthMethod:        AuthMethodBasic,
		Timeout:           30 * time.Second,
		RequestsPerSecond: 5,
		FieldKeys:         DefaultFieldKeys(),
		DefaultIssueType:  "Story",
	}
}

// Validate reports every missing connection parameter at once.
// The names are the environment variables that supply them.
func (s Settings) Validate() error {
	var missing []string
	if s.BaseURL == "" {
		missing = append(missing, "JIRA_BASE_URL")
	}
	if s.AuthMethod.RequiresEmail() && s.Email == "" {
		missing = append(missing, "JIRA_EMAIL")
	}
	if s.APIToken == "" {
		missing = append(missing, "JIRA_API_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	if !s.AuthMethod.IsValid() {
		return fmt.Errorf("%w: auth method %q", ErrInvalidInput, s.AuthMethod)
	}
	return nil
}

package services

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driven"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyBaseURL           = "jira.base_url"
	keyEmail             = "jira.email"
	keyAPIToken          = "jira.api_token"
	keyAuthMethod        = "jira.auth_method"
	keyTimeoutSeconds    = "jira.timeout_seconds"
	keyRequestsPerSecond = "jira.requests_per_second"
	keyStoryPointsField  = "fields.story_points"
	keyEpicLinkField     = "fields.epic_link"
	keySprintField       = "fields.sprint"
	keyDefaultIssueType  = "issues.default_type"
)

// envKeys maps environment variables onto the config keys they override.
//
//nolint:gosec // G101: These are variable names, not actual credentials.
var envKeys = map[string]string{
	keyBaseURL:          "JIRA_BASE_URL",
	keyEmail:            "JIRA_EMAIL",
	keyAPIToken:         "JIRA_API_TOKEN",
	keyAuthMethod:       "JIRA_AUTH_METHOD",
	keyStoryPointsField: "JIRA_STORY_POINTS_FIELD",
	keyEpicLinkField:    "JIRA_EPIC_LINK_FIELD",
	keySprintField:      "JIRA_SPRINT_FIELD",
	keyDefaultIssueType: "JIRA_DEFAULT_ISSUE_TYPE",
}

// LookupEnvFunc reads an environment variable.
type LookupEnvFunc func(key string) (string, bool)

// SettingsService resolves settings from defaults, the config store and
// the environment, in increasing order of precedence.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   LookupEnvFunc
}

// NewSettingsService creates a new settings service.
// A nil lookupEnv reads the process environment.
func NewSettingsService(configStore driven.ConfigStore, lookupEnv LookupEnvFunc) *SettingsService {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   lookupEnv,
	}
}

// Get returns the effective settings without checking completeness.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	settings.BaseURL = strings.TrimRight(s.getString(keyBaseURL, ""), "/")
	settings.Email = s.getString(keyEmail, "")
	settings.APIToken = s.getString(keyAPIToken, "")
	settings.AuthMethod = domain.AuthMethod(s.getString(keyAuthMethod, settings.AuthMethod.String()))
	settings.DefaultIssueType = s.getString(keyDefaultIssueType, settings.DefaultIssueType)

	if secs := s.getFloat(keyTimeoutSeconds); secs > 0 {
		settings.Timeout = time.Duration(secs * float64(time.Second))
	}
	if rps := s.getFloat(keyRequestsPerSecond); rps > 0 {
		settings.RequestsPerSecond = rps
	}

	settings.FieldKeys = domain.FieldKeys{
		StoryPoints: s.getString(keyStoryPointsField, ""),
		EpicLink:    s.getString(keyEpicLinkField, ""),
		Sprint:      s.getString(keySprintField, ""),
	}.WithDefaults()

	return &settings, nil
}

// Load returns the effective settings and fails when connection
// parameters are missing.
func (s *SettingsService) Load() (*domain.Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Set validates and stores a single configuration key.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyBaseURL, keyEmail, keyAPIToken, keyStoryPointsField, keyEpicLinkField,
		keySprintField, keyDefaultIssueType:
		return s.configStore.Set(key, value)
	case keyAuthMethod:
		if !domain.AuthMethod(value).IsValid() {
			return fmt.Errorf("%w: auth method %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, value)
	case keyTimeoutSeconds:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, n)
	case keyRequestsPerSecond:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, f)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys lists the configuration keys accepted by Set.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyBaseURL, keyEmail, keyAPIToken, keyAuthMethod, keyTimeoutSeconds,
		keyRequestsPerSecond, keyStoryPointsField, keyEpicLinkField, keySprintField,
		keyDefaultIssueType,
	}
	sort.Strings(keys)
	return keys
}

// Path returns the configuration file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// getString returns the environment override, then the stored value,
// then def.
func (s *SettingsService) getString(key, def string) string {
	if env, ok := envKeys[key]; ok {
		if val, ok := s.lookupEnv(env); ok && val != "" {
			return val
		}
	}
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return def
}

// getFloat reads a numeric value stored as either integer or float.
func (s *SettingsService) getFloat(key string) float64 {
	val, ok := s.configStore.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

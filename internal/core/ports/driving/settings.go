package driving

import "github.com/custodia-labs/jira-worker/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: defaults, then the config
	// file, then environment variables.
	Get() (*domain.Settings, error)

	// Load returns the effective settings and fails with
	// domain.ErrMissingConfig when connection parameters are absent.
	Load() (*domain.Settings, error)

	// Set stores a single configuration key.
	Set(key, value string) error

	// Keys lists the configuration keys accepted by Set.
	Keys() []string

	// Path returns the configuration file location.
	Path() string
}

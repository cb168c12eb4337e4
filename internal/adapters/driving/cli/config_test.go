package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

func TestConfigCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range configCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"show", "set", "path"}, names)
}

func TestConfigPathCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}

func TestConfigShowCmd_Defaults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Base URL:      (not set)")
	assert.Contains(t, out, "Auth:          Basic (email + API token)")
	assert.Contains(t, out, "API Token:     (not set)")
	assert.Contains(t, out, "Timeout:       30s")
	assert.Contains(t, out, "Story points:  customfield_10016")
	assert.Contains(t, out, "Default type:  Story")
	assert.Contains(t, out, "Status: missing required configuration: JIRA_BASE_URL, JIRA_EMAIL, JIRA_API_TOKEN")
}

func TestConfigShowCmd_Configured(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, store.Set("jira.base_url", "https://example.atlassian.net"))
	require.NoError(t, store.Set("jira.email", "me@example.com"))
	require.NoError(t, store.Set("jira.api_token", "abcd1234efgh5678"))

	out, err := execute(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "Base URL:      https://example.atlassian.net")
	assert.Contains(t, out, "Email:         me@example.com")
	assert.Contains(t, out, "API Token:     abcd...5678")
	assert.NotContains(t, out, "abcd1234efgh5678")
	assert.Contains(t, out, "Status: ready")
}

func TestConfigShowCmd_BearerHidesEmail(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, store.Set("jira.auth_method", "bearer"))

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Auth:          Bearer (personal access token)")
	assert.NotContains(t, out, "Email:")
}

func TestConfigSetCmd(t *testing.T) {
	t.Run("stores value", func(t *testing.T) {
		_, cleanup := setupTestServices()
		defer cleanup()

		out, err := execute(t, "config", "set", "jira.timeout_seconds", "15")

		require.NoError(t, err)
		assert.Contains(t, out, "Set jira.timeout_seconds = 15")
		settings, err := settingsService.Get()
		require.NoError(t, err)
		assert.Equal(t, 15*time.Second, settings.Timeout)
	})

	t.Run("unknown key lists valid keys", func(t *testing.T) {
		_, cleanup := setupTestServices()
		defer cleanup()

		_, err := execute(t, "config", "set", "jira.nope", "x")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "valid keys:")
		assert.Contains(t, err.Error(), "fields.story_points")
	})

	t.Run("secret read from input and masked", func(t *testing.T) {
		store, cleanup := setupTestServices()
		defer cleanup()

		rootCmd.SetIn(strings.NewReader("supersecrettoken\n"))
		out, err := execute(t, "config", "set", "jira.api_token")

		require.NoError(t, err)
		assert.Contains(t, out, "Enter jira.api_token: ")
		assert.Contains(t, out, "Set jira.api_token = supe...oken")
		assert.Equal(t, "supersecrettoken", store.GetString("jira.api_token"))
	})

	t.Run("plain key needs value", func(t *testing.T) {
		_, cleanup := setupTestServices()
		defer cleanup()

		_, err := execute(t, "config", "set", "jira.base_url")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("too many args", func(t *testing.T) {
		_, cleanup := setupTestServices()
		defer cleanup()

		_, err := execute(t, "config", "set", "a", "b", "c")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts between 1 and 2 arg(s)")
	})
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{key: "", expected: "****"},
		{key: "short", expected: "****"},
		{key: "12345678", expected: "****"},
		{key: "123456789", expected: "1234...6789"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskAPIKey(tt.key))
		})
	}
}

// Package cli implements the jira-worker command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/jira-worker/internal/adapters/driven/config/file"
	"github.com/custodia-labs/jira-worker/internal/adapters/driven/jira"
	"github.com/custodia-labs/jira-worker/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/jira-worker/internal/core/domain"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driven"
	"github.com/custodia-labs/jira-worker/internal/core/ports/driving"
	"github.com/custodia-labs/jira-worker/internal/core/services"
	"github.com/custodia-labs/jira-worker/internal/logger"
	"github.com/custodia-labs/jira-worker/internal/normalisers/markdown"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services shared by the commands. They are wired once in setupServices.
var (
	settingsService driving.SettingsService
	documentService driving.DocumentService
	fieldMapper     *services.FieldMapper
	configWatcher   driven.ConfigWatcher

	// newIssueService builds the issue service once settings are complete.
	newIssueService = buildIssueService
)

var rootCmd = &cobra.Command{
	Use:   "jira-worker",
	Short: "Create and update Jira issues from Markdown",
	Long: `jira-worker exposes Jira issue operations to AI assistants over the
Model Context Protocol. Markdown descriptions and comments are converted
to Atlassian Document Format before submission.

Connection settings come from ~/.jira-worker/config.toml, a .env file in
the working directory, or the environment:
  JIRA_BASE_URL, JIRA_EMAIL, JIRA_API_TOKEN`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable diagnostic logging on stderr")
	rootCmd.PersistentFlags().String("config-dir", "", "configuration directory (default ~/.jira-worker)")
}

// Execute runs the root command with the given build version.
func Execute(ctx context.Context, buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.ExecuteContext(ctx)
}

func setupServices(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("getting verbose flag: %w", err)
	}
	logger.SetVerbose(verbose)

	if settingsService != nil {
		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("ignoring .env: %v", err)
	}

	configDir, err := cmd.Flags().GetString("config-dir")
	if err != nil {
		return fmt.Errorf("getting config-dir flag: %w", err)
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		// Environment variables alone are enough to serve.
		logger.Warn("config file unavailable, using environment only: %v", err)
		mem := memory.NewConfigStore()
		wireServices(mem, mem, nil)
		return nil
	}

	wireServices(store, store, nil)
	logger.Debug("config loaded from %s", store.Path())
	return nil
}

// wireServices builds the settings, mapping and conversion services on
// top of store. A nil lookupEnv reads the process environment.
func wireServices(store driven.ConfigStore, watcher driven.ConfigWatcher, lookupEnv services.LookupEnvFunc) {
	settings := services.NewSettingsService(store, lookupEnv)

	keys := domain.DefaultFieldKeys()
	if current, err := settings.Get(); err == nil {
		keys = current.FieldKeys
	}

	normaliser := markdown.New()
	fieldMapper = services.NewFieldMapper(normaliser, keys)
	documentService = services.NewDocumentService(normaliser, fieldMapper)
	settingsService = settings
	configWatcher = watcher
}

func buildIssueService(settings *domain.Settings) (driving.IssueService, error) {
	client, err := jira.NewClient(jira.ConfigFromSettings(settings))
	if err != nil {
		return nil, fmt.Errorf("creating jira client: %w", err)
	}
	return services.NewIssueService(client, markdown.New(), fieldMapper, settings.DefaultIssueType), nil
}

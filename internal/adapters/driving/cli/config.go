package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/jira-worker/internal/core/domain"
)

// secretKeys may be entered without echo when no value is given.
var secretKeys = map[string]bool{
	"jira.api_token": true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
	Long: `Show and change jira-worker settings.

Settings are stored in config.toml inside the configuration directory.
Environment variables (JIRA_BASE_URL, JIRA_EMAIL, JIRA_API_TOKEN,
JIRA_AUTH_METHOD, JIRA_STORY_POINTS_FIELD, JIRA_EPIC_LINK_FIELD,
JIRA_SPRINT_FIELD, JIRA_DEFAULT_ISSUE_TYPE) take precedence over the file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY [VALUE]",
	Short: "Store a setting",
	Long: `Store a setting in config.toml.

Keys:
  jira.base_url             Site URL, e.g. https://your-site.atlassian.net
  jira.email                Account email (basic auth)
  jira.api_token            API token or personal access token
  jira.auth_method          basic or bearer
  jira.timeout_seconds      Per-request timeout
  jira.requests_per_second  Client-side request rate
  fields.story_points       Story points custom field
  fields.epic_link          Epic link custom field
  fields.sprint             Sprint custom field
  issues.default_type       Issue type used when create_issue omits one

Omit VALUE for jira.api_token to be prompted without echo.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), settingsService.Path())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Jira]")
	fmt.Fprintf(out, "  Base URL:      %s\n", orNotSet(settings.BaseURL))
	fmt.Fprintf(out, "  Auth:          %s\n", settings.AuthMethod.Description())
	if settings.AuthMethod.RequiresEmail() {
		fmt.Fprintf(out, "  Email:         %s\n", orNotSet(settings.Email))
	}
	token := "(not set)"
	if settings.APIToken != "" {
		token = maskAPIKey(settings.APIToken)
	}
	fmt.Fprintf(out, "  API Token:     %s\n", token)
	fmt.Fprintf(out, "  Timeout:       %s\n", settings.Timeout)
	fmt.Fprintf(out, "  Requests/sec:  %g\n", settings.RequestsPerSecond)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Fields]")
	fmt.Fprintf(out, "  Story points:  %s\n", settings.FieldKeys.StoryPoints)
	fmt.Fprintf(out, "  Epic link:     %s\n", settings.FieldKeys.EpicLink)
	fmt.Fprintf(out, "  Sprint:        %s\n", settings.FieldKeys.Sprint)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Issues]")
	fmt.Fprintf(out, "  Default type:  %s\n", settings.DefaultIssueType)
	fmt.Fprintln(out)

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(out, "Status: %v\n", err)
	} else {
		fmt.Fprintln(out, "Status: ready")
	}
	fmt.Fprintf(out, "Config file: %s\n", settingsService.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		if !secretKeys[key] {
			return fmt.Errorf("%w: %s needs a value", domain.ErrInvalidInput, key)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Enter %s: ", key)
		value = readPassword(cmd.InOrStdin())
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}

	display := value
	if secretKeys[key] {
		display = maskAPIKey(value)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, display)
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// readPassword reads a line without echo when stdin is a terminal and
// falls back to a plain read otherwise.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readPassword(in io.Reader) string {
	if in == os.Stdin && stdinIsTerminal() {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jira-worker/internal/adapters/driving/mcp"
	"github.com/custodia-labs/jira-worker/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing Jira issue tools.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Use --watch-config to pick up custom-field changes in config.toml
without restarting.

Examples:
  # Stdio mode (default, for Claude Desktop)
  jira-worker mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  jira-worker mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "jira": {
        "command": "/path/to/jira-worker",
        "args": ["mcp", "serve"],
        "env": {
          "JIRA_BASE_URL": "https://your-site.atlassian.net",
          "JIRA_EMAIL": "you@example.com",
          "JIRA_API_TOKEN": "..."
        }
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch-config", false, "reload custom-field keys when the config file changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch-config")
	if err != nil {
		return fmt.Errorf("getting watch-config flag: %w", err)
	}

	settings, err := settingsService.Load()
	if err != nil {
		return err
	}

	issues, err := newIssueService(settings)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Issues:    issues,
		Documents: documentService,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if watch && configWatcher != nil {
		go watchConfig(ctx)
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

func watchConfig(ctx context.Context) {
	logger.Debug("watching %s for changes", settingsService.Path())
	if err := configWatcher.Watch(ctx, reloadFieldKeys); err != nil {
		logger.Warn("config watch stopped: %v", err)
	}
}

// reloadFieldKeys swaps the mapper's custom-field identifiers for the
// current settings.
func reloadFieldKeys() {
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("reloading settings: %v", err)
		return
	}
	fieldMapper.SetKeys(settings.FieldKeys)
	logger.Info("custom-field keys reloaded")
}

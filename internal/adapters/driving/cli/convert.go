package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errNoInput is returned when convert has neither a file nor piped stdin.
var errNoInput = errors.New("no input: pass a file or pipe Markdown on stdin")

// stdinIsTerminal reports whether stdin is interactive.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert Markdown to Atlassian Document Format",
	Long: `Convert Markdown to the Atlassian Document Format JSON that Jira
stores for descriptions and comments.

The Markdown is read from the file argument, or from stdin when no file
is given ("-" also reads stdin).

Examples:
  jira-worker convert notes.md
  cat notes.md | jira-worker convert --compact`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Bool("compact", false, "print JSON on a single line")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	compact, err := cmd.Flags().GetBool("compact")
	if err != nil {
		return fmt.Errorf("getting compact flag: %w", err)
	}

	input, err := readMarkdown(cmd, args)
	if err != nil {
		return err
	}

	doc := documentService.Convert(input)

	var data []byte
	if compact {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func readMarkdown(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	if stdinIsTerminal() {
		return "", errNoInput
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

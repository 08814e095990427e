// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"rustlab-cli/pkg/scaffold"
)

// newDocsCommand creates the `rustlab docs` command.
func newDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs <path>",
		Short: "Render a module README in the terminal",
		Long: `Render a module's README.md in the terminal with markdown styling.

Examples:
  rustlab docs examples/01-helloWorld`,
		Args: cobra.ExactArgs(1),
		RunE: runDocs,
	}
	return cmd
}

func runDocs(_ *cobra.Command, args []string) error {
	readmePath := filepath.Join(args[0], scaffold.ReadmeFile)
	content, err := os.ReadFile(readmePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", readmePath, err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(string(content))
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", readmePath, err)
	}

	fmt.Print(rendered)
	return nil
}

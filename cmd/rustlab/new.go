// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rustlab-cli/internal/checker"
	"rustlab-cli/internal/issue"
	"rustlab-cli/internal/tui"
	"rustlab-cli/pkg/scaffold"
	"rustlab-cli/pkg/workspace"
)

// tuiConfirmer renders the interactive overwrite prompt. It satisfies
// scaffold.Confirmer; tests inject canned answers instead.
type tuiConfirmer struct{}

func (tuiConfirmer) Confirm(prompt string) (bool, error) {
	return tui.Confirm(tui.ConfirmOptions{Title: prompt})
}

// newNewCommand creates the `rustlab new` command.
func newNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <kind> <name> [description]",
		Short: "Scaffold a new learning module",
		Long: `Scaffold a new learning module in the current workspace.

The kind must be one of: example, exercise, project. The name is used
verbatim as the directory name; the Cargo package name is derived from it
(leading numbering stripped, separators normalized, lowercased).

Must be run from the workspace root (the directory containing Cargo.toml
plus the examples/ and utils/ directories).

Examples:
  rustlab new example 01-helloWorld
  rustlab new example 02-variables "Entropy and password strength"
  rustlab new exercise 03-ownership
  rustlab new project temperature-converter`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runNew,
	}
	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	kind, err := scaffold.ParseKind(args[0])
	if err != nil {
		return err
	}

	description := ""
	if len(args) > 2 {
		description = args[2]
	}
	req := scaffold.Request{Kind: kind, Name: args[1], Description: description}

	// Root detection happens before any filesystem write.
	ws, err := workspace.Detect("")
	if err != nil {
		if errors.Is(err, workspace.ErrNotRoot) {
			return issue.NewErrorContext().
				WithOperation("detect workspace root").
				WithSuggestion("Run rustlab from the workspace root").
				WithSuggestion("The root must contain " + workspace.RootManifest + " plus examples/ and utils/ directories").
				Wrap(err).
				BuildError()
		}
		return err
	}

	fmt.Println(TitleStyle.Render("Create Module"))

	result, err := scaffold.Create(scaffold.CreateOptions{
		Workspace: ws,
		Request:   req,
		Edition:   cfg.Edition,
		Confirm:   tuiConfirmer{},
	})
	if err != nil {
		return fmt.Errorf("failed to create module: %w", err)
	}

	if !result.Created {
		// User declined the overwrite: a successful no-op, exit 0.
		fmt.Printf("%s Cancelled, %s left untouched\n", infoIcon, PathStyle.Render(result.Path))
		return nil
	}

	fmt.Printf("%s Module created successfully\n", successIcon)
	fmt.Println()
	fmt.Printf("%s Path: %s\n", infoIcon, PathStyle.Render(result.Path))
	fmt.Printf("%s Package: %s\n", infoIcon, CmdStyle.Render(result.Identifier))
	if result.Replaced {
		fmt.Printf("%s Replaced the previous module contents\n", infoIcon)
	}

	reportAdvisoryCheck(cmd, result.Path)

	relPath, relErr := filepath.Rel(ws.Root, result.Path)
	if relErr != nil {
		relPath = result.Path
	}
	fmt.Println()
	fmt.Printf("%s Next steps:\n", infoIcon)
	fmt.Printf("   1. Edit %s to implement the module\n", PathStyle.Render(filepath.Join(relPath, "src", "main.rs")))
	fmt.Printf("   2. Run %s inside %s\n", CmdStyle.Render("cargo run"), PathStyle.Render(relPath))
	fmt.Printf("   3. Run %s to verify quality\n", CmdStyle.Render("rustlab check "+relPath))

	return nil
}

// reportAdvisoryCheck runs the configured build check against the new module.
// Failure is advisory: the generated files stay and only a warning is printed.
func reportAdvisoryCheck(cmd *cobra.Command, dir string) {
	var stdout, stderr io.Writer
	var captured bytes.Buffer
	if verbose {
		stdout, stderr = os.Stdout, os.Stderr
	} else {
		stdout, stderr = io.Discard, &captured
	}

	runner := checker.NewShellRunner(stdout, stderr)
	result := runner.Run(cmd.Context(), cfg.CheckCommand, dir)

	fmt.Println()
	switch {
	case result.Ok():
		fmt.Printf("%s Advisory check passed (%s)\n", successIcon, CmdStyle.Render(cfg.CheckCommand))
	default:
		fmt.Printf("%s Advisory check failed (%s)\n", warnIcon, CmdStyle.Render(cfg.CheckCommand))
		if result.Error != nil {
			fmt.Printf("%s %s\n", warnIcon, result.Error)
		} else if !verbose && captured.Len() > 0 {
			fmt.Print(captured.String())
		}
		fmt.Printf("%s The generated files are in place; fix the module and re-run %s\n",
			infoIcon, CmdStyle.Render(cfg.CheckCommand))
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rustlab-cli/internal/checker"
)

// newCheckCommand creates the `rustlab check` command.
func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Run the quality pipeline against a module",
		Long: `Run the configured quality pipeline against a module directory.

The default pipeline is formatting, lints, and tests:
  cargo fmt --check
  cargo clippy -- -D warnings
  cargo test

Each step is reported individually; the command exits non-zero if any
step fails. Override the pipeline via quality.commands in the config file.

Examples:
  rustlab check examples/01-helloWorld
  rustlab check                          # check the current directory`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("not a module directory: %s", dir)
	}

	fmt.Println(TitleStyle.Render("Quality Check"))
	fmt.Printf("%s Module: %s\n", infoIcon, PathStyle.Render(dir))
	fmt.Println()

	runner := checker.NewShellRunner(os.Stdout, os.Stderr)
	failed := 0
	for _, command := range cfg.Quality.Commands {
		result := runner.Run(cmd.Context(), command, dir)
		switch {
		case result.Ok():
			fmt.Printf("%s %s\n", successIcon, CmdStyle.Render(command))
		case result.Error != nil:
			failed++
			fmt.Printf("%s %s: %s\n", errorIcon, CmdStyle.Render(command), result.Error)
		default:
			failed++
			fmt.Printf("%s %s (exit %d)\n", errorIcon, CmdStyle.Render(command), result.ExitCode)
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%s %d of %d steps failed\n", errorIcon, failed, len(cfg.Quality.Commands))
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1}
	}
	fmt.Printf("%s All %d steps passed\n", successIcon, len(cfg.Quality.Commands))
	return nil
}

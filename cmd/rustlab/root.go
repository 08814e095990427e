// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rustlab-cli/internal/config"
	"rustlab-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the configuration resolved once at startup.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "rustlab",
		Short: "Scaffolding for a Rust learning workspace",
		Long: TitleStyle.Render("rustlab") + SubtitleStyle.Render(" - Scaffolding for a Rust learning workspace") + `

rustlab generates learning modules (examples, exercises, projects) in a
tutorial-style Rust workspace. Each module is a small Cargo package with a
manifest, a source stub, a README, and an integration-test stub, verified
by an advisory 'cargo check' after generation.

` + SubtitleStyle.Render("Quick Start:") + `
  1. cd to your workspace root (the directory with Cargo.toml, examples/, utils/)
  2. Run: rustlab new example 01-helloWorld "My first program"
  3. Open examples/01-helloWorld and start hacking

` + SubtitleStyle.Render("Examples:") + `
  rustlab new example 01-helloWorld      Scaffold a new example
  rustlab check examples/01-helloWorld   Run the quality pipeline
  rustlab validate examples/01-helloWorld  Verify module structure
  rustlab docs examples/01-helloWorld    Render the module README`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rustlab/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(newNewCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newDocsCommand())
	rootCmd.AddCommand(newConfigCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the configuration and wires verbose logging.
func initRootConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err))
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render their remediation hints; anything else falls back to Error().
func formatErrorForDisplay(err error) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format()
	}
	return err.Error()
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rustlab-cli/pkg/scaffold"
)

// newValidateCommand creates the `rustlab validate` command.
func newValidateCommand() *cobra.Command {
	var validateKind string

	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate the structure of a generated module",
		Long: `Validate that a module directory has the expected structure: the Cargo
manifest, source stub, README, and integration test must exist, the
manifest must parse, and its package name must match the directory name.

The module kind is inferred from the parent directory (examples/,
exercises/, projects/); use --kind when validating a module elsewhere.

Examples:
  rustlab validate examples/01-helloWorld
  rustlab validate --kind exercise /tmp/03-ownership`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], validateKind)
		},
	}

	cmd.Flags().StringVarP(&validateKind, "kind", "k", "", "module kind (example, exercise, project); inferred from the path by default")

	return cmd
}

func runValidate(cmd *cobra.Command, modulePath, kindFlag string) error {
	kind, err := resolveKind(modulePath, kindFlag)
	if err != nil {
		return err
	}

	result, err := scaffold.Validate(modulePath, kind)
	if err != nil {
		return fmt.Errorf("failed to validate module: %w", err)
	}

	if result.Valid {
		fmt.Printf("%s %s is a valid %s module", successIcon, PathStyle.Render(result.ModulePath), kind)
		if result.PackageName != "" {
			fmt.Printf(" (package %s)", CmdStyle.Render(result.PackageName))
		}
		fmt.Println()
		return nil
	}

	fmt.Printf("%s %s has %d issue(s):\n", errorIcon, PathStyle.Render(result.ModulePath), len(result.Issues))
	for _, is := range result.Issues {
		if is.Path != "" {
			fmt.Printf("  [%s] %s (%s)\n", is.Type, is.Message, is.Path)
		} else {
			fmt.Printf("  [%s] %s\n", is.Type, is.Message)
		}
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: 1}
}

// resolveKind infers the module kind from the parent directory name
// (examples/ -> example), falling back to the --kind flag.
func resolveKind(modulePath, kindFlag string) (scaffold.Kind, error) {
	if kindFlag != "" {
		return scaffold.ParseKind(kindFlag)
	}

	abs, err := filepath.Abs(modulePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve module path: %w", err)
	}
	parent := filepath.Base(filepath.Dir(abs))
	for _, k := range scaffold.Kinds() {
		if parent == k.Dir() {
			return k, nil
		}
	}
	return "", fmt.Errorf("cannot infer module kind from %s; pass --kind %s",
		parent, strings.Join([]string{"example", "exercise", "project"}, "|"))
}

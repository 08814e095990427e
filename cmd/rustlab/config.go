// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"rustlab-cli/internal/config"
)

// newConfigCommand creates the `rustlab config` command group.
func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect rustlab configuration",
	}
	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

// newConfigShowCommand creates the `rustlab config show` command.
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the resolved configuration as TOML, after merging the config
file, RUSTLAB_* environment variables, and defaults.`,
		RunE: runConfigShow,
	}
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	out, err := toml.Marshal(struct {
		CheckCommand string               `toml:"check_command"`
		Edition      string               `toml:"edition"`
		Quality      config.QualityConfig `toml:"quality"`
		UI           config.UIConfig      `toml:"ui"`
	}{
		CheckCommand: cfg.CheckCommand,
		Edition:      cfg.Edition,
		Quality:      cfg.Quality,
		UI:           cfg.UI,
	})
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	if dir, err := config.ConfigDir(); err == nil {
		fmt.Printf("%s Config dir: %s\n", infoIcon, PathStyle.Render(dir))
	}
	fmt.Println()
	fmt.Print(string(out))
	return nil
}

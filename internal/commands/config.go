package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/ollamachat/internal/config"
	"github.com/diogo/ollamachat/internal/render"
)

func newConfigCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
		Long: `Show or change settings stored in config.json.

The config directory is ~/.ollamachat unless OLLAMACHAT_HOME is set.
Keys use dotted paths, e.g. markdown.style.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(deps)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfig(deps)
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print a single setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.LoadConfig()
				if err != nil {
					return err
				}
				value, err := config.GetValue(cfg, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(deps.Stdout, value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change a single setting",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return setConfig(deps, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.GetConfigPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(deps.Stdout, path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "List settable keys",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(deps.Stdout, strings.Join(config.Keys(), "\n"))
				return nil
			},
		},
	)

	return cmd
}

func showConfig(deps *Dependencies) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}

func setConfig(deps *Dependencies, key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := config.SetValue(&cfg, key, value); err != nil {
		return err
	}

	// Unknown names would silently fall back to a default at render time
	switch key {
	case "tui_theme":
		if _, ok := render.PaletteByName(value); !ok {
			return fmt.Errorf("unknown tui theme %q (available: %s)", value, strings.Join(render.PaletteNames(), ", "))
		}
	case "markdown.style":
		if err := render.ValidateStyle(value); err != nil {
			return err
		}
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, defaultStyles.success.Render(fmt.Sprintf("✓ %s = %s", key, value)))
	return nil
}

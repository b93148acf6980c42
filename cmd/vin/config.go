// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zwilson999/vin-decoder/internal/config"
	"github.com/zwilson999/vin-decoder/internal/issue"
	"github.com/zwilson999/vin-decoder/internal/output"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `vin config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vin configuration",
		Long: `Manage vin configuration.

Configuration is stored in:
  - Linux: ~/.config/vin/config.cue
  - macOS: ~/Library/Application Support/vin/config.cue
  - Windows: %APPDATA%\vin\config.cue

Environment variables VIN_OUTPUT, VIN_STRICT, VIN_UI_VERBOSE and
VIN_UI_COLOR_SCHEME override the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), app, args[0], args[1])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, app.loadOptions())
	if err != nil {
		renderIssueId(app.stderr, issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		return err
	}

	keyStyle := output.KeyStyle
	valueStyle := output.SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, output.TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	cfgPath, err := config.Resolve(ctx, app.loadOptions())
	if err != nil || cfgPath == "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), output.SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("output"), valueStyle.Render(cfg.Output.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("strict"), valueStyle.Render(strconv.FormatBool(cfg.Strict)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))

	return nil
}

func initConfig(app *App) error {
	cfgPath, err := config.CreateDefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", output.SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", cfgPath)
	return nil
}

// setConfigValue rewrites the file the configuration was read from, or the
// user config file when none exists. Environment overrides are not persisted.
func setConfigValue(ctx context.Context, app *App, key, value string) error {
	opts := app.loadOptions()
	opts.IgnoreEnv = true

	cfg, err := app.Config.Load(ctx, opts)
	if err != nil {
		return err
	}

	if err := config.Set(cfg, key, value); err != nil {
		return err
	}

	cfgPath, err := config.Resolve(ctx, opts)
	if err != nil {
		return err
	}
	if cfgPath == "" {
		if cfgPath, err = config.ConfigFilePath(); err != nil {
			return err
		}
	}

	if err := config.Save(cfg, cfgPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Set %s = %s in %s\n", output.SuccessStyle.Render("✓"), key, value, cfgPath)
	return nil
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/zwilson999/vin-decoder/internal/issue"
	"github.com/zwilson999/vin-decoder/internal/output"
	"github.com/zwilson999/vin-decoder/pkg/types"
	"github.com/zwilson999/vin-decoder/pkg/vin"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the flag values of the root command.
type rootFlags struct {
	output  string
	strict  bool
	verbose bool
}

// NewRootCommand builds the `vin` command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "vin <VIN>",
		Short: "Validate a Vehicle Identification Number",
		Long: output.TitleStyle.Render("vin") + output.SubtitleStyle.Render(" - Validate a Vehicle Identification Number") + `

vin checks that a VIN has 17 characters, contains none of the letters
I, O or Q, and carries a check digit (position 9) that matches the
weighted checksum of the other positions.

` + output.SubtitleStyle.Render("Examples:") + `
  vin 1HGCM82633A004352             Validate a VIN
  vin -o json 1HGCM82633A004352     Print the result as JSON
  vin --strict 1HGCM82633A004351    Exit with status 1 when a check fails
  vin explain 1HGCM82633A004352     Show how the check digit is computed
  vin config show                   Show current configuration`,
		Args:          exactlyOneVIN,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.loadConfig(cmd.Context())

			verbose := cfg.UI.Verbose
			if cmd.Flags().Changed("verbose") {
				verbose = flags.verbose
			}
			app.setVerbose(verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, app, flags, args[0])
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log the checksum computation")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/vin/config.cue)")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", string(output.FormatText), "output format (text, json, toml, cue)")
	rootCmd.Flags().BoolVar(&flags.strict, "strict", false, "exit with status 1 when any check fails")

	rootCmd.AddCommand(newExplainCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// runCheck validates raw and writes the record in the selected format.
func runCheck(cmd *cobra.Command, app *App, flags *rootFlags, raw string) error {
	cfg := app.currentConfig()

	format := output.Format(cfg.Output)
	if cmd.Flags().Changed("output") {
		format = output.Format(flags.output)
	}
	if ok, errs := format.IsValid(); !ok {
		renderIssue(app.stderr, errs[0], cfg.UI.ColorScheme)
		return &ExitError{Code: types.ExitUsage, Err: errs[0]}
	}

	strict := cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = flags.strict
	}

	v := vin.Normalize(raw)
	report := vin.Validate(v)
	logChecksum(app, v, report)

	if err := output.Write(app.stdout, format, report.Record()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if report.Valid() || !strict {
		return nil
	}
	if report.ChecksumErr != nil {
		renderIssue(app.stderr, report.ChecksumErr, cfg.UI.ColorScheme)
	} else if !report.ValidChecksum {
		renderIssueId(app.stderr, issue.ChecksumMismatchId, cfg.UI.ColorScheme)
	}
	return &ExitError{Code: types.ExitInvalid, Err: fmt.Errorf("VIN %s failed validation", v)}
}

// logChecksum logs the intermediate checksum values at debug level and warns
// with the expected check digit on a mismatch.
func logChecksum(app *App, v vin.VIN, report vin.Report) {
	if report.ChecksumErr != nil {
		app.logger.Debug("checksum not computed", "vin", v, "err", report.ChecksumErr)
		return
	}

	b, err := vin.Explain(v.String())
	if err != nil {
		return
	}
	app.logger.Debug("checksum computed",
		"vin", v,
		"sum", b.Sum,
		"remainder", b.Remainder,
		"check_digit", string(b.CheckDigit),
	)

	if !report.ValidChecksum {
		want, err := vin.ComputeCheckDigit(v.String())
		if err != nil {
			return
		}
		app.logger.Warn("check digit mismatch", "got", string(b.CheckDigit), "expected", string(want))
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	// fang overrides rootCmd.Version, so the version goes through fang.WithVersion.
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err == nil {
		return
	}

	if errors.Is(err, ErrInvalidArgumentCount) {
		renderIssue(app.stderr, err, app.currentConfig().UI.ColorScheme)
	}
	os.Exit(int(exitCodeFor(err)))
}

// exitCodeFor maps a command error onto the process exit status. Errors
// without an *ExitError, or carrying a code outside 0-255, exit with ExitInvalid.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitOK
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return types.ExitInvalid
	}
	if verr := exitErr.Code.Validate(); verr != nil {
		return types.ExitInvalid
	}
	return exitErr.Code
}

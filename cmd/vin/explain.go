// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/zwilson999/vin-decoder/internal/output"
	"github.com/zwilson999/vin-decoder/pkg/types"
	"github.com/zwilson999/vin-decoder/pkg/vin"

	"github.com/spf13/cobra"
)

// newExplainCommand creates the `vin explain` command.
func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <VIN>",
		Short: "Show how the check digit of a VIN is computed",
		Long: `Show the transliterated value, weight and product of every position,
the weighted sum, its remainder modulo 11 and the check digit it calls for.`,
		Args: exactlyOneVIN,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(app, args[0])
		},
	}
}

func runExplain(app *App, raw string) error {
	v := vin.Normalize(raw)

	b, err := vin.Explain(v.String())
	if err != nil {
		renderIssue(app.stderr, err, app.currentConfig().UI.ColorScheme)
		return &ExitError{Code: types.ExitInvalid, Err: fmt.Errorf("cannot explain %s: %w", v, err)}
	}

	app.logger.Debug("checksum computed", "vin", v, "sum", b.Sum, "remainder", b.Remainder)
	return output.WriteBreakdown(app.stdout, v, b)
}

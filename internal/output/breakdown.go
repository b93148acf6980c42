// SPDX-License-Identifier: MPL-2.0

package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/zwilson999/vin-decoder/pkg/vin"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// WriteBreakdown renders the per-position checksum table followed by the
// sum, remainder and check digit comparison.
func WriteBreakdown(w io.Writer, v vin.VIN, b vin.Breakdown) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		Headers("pos", "char", "value", "weight", "product").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case row == vin.CheckDigitPosition-1:
				return tableCheckDigitStyle
			default:
				return tableCellStyle
			}
		})

	for _, p := range b.Positions {
		t.Row(
			strconv.Itoa(p.Index),
			string(p.Char),
			strconv.Itoa(p.Value),
			strconv.Itoa(p.Weight),
			strconv.Itoa(p.Product),
		)
	}

	verdict := SuccessStyle.Render("check digit matches")
	if !b.Valid() {
		verdict = ErrorStyle.Render(fmt.Sprintf("check digit mismatch: expected %q", b.Expected))
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s %d\n%s %d (sum mod 11)\n%s %q (expected %q)\n%s\n",
		TitleStyle.Render(v.String()),
		t.Render(),
		KeyStyle.Render("sum:"), b.Sum,
		KeyStyle.Render("remainder:"), b.Remainder,
		KeyStyle.Render("check digit:"), b.CheckDigit, b.Expected,
		verdict,
	)
	return err
}

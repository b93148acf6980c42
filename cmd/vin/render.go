// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/zwilson999/vin-decoder/internal/config"
	"github.com/zwilson999/vin-decoder/internal/issue"
	"github.com/zwilson999/vin-decoder/internal/output"
	"github.com/zwilson999/vin-decoder/pkg/vin"
)

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use their own Format method; verbose mode shows the chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueIdFor maps an error onto the issue catalog entry that explains it.
func issueIdFor(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, ErrInvalidArgumentCount):
		return issue.InvalidArgumentCountId, true
	case errors.Is(err, vin.ErrInvalidCharacter):
		return issue.InvalidCharacterId, true
	case errors.Is(err, vin.ErrInvalidLength):
		return issue.InvalidLengthId, true
	case errors.Is(err, output.ErrInvalidFormat), errors.Is(err, config.ErrInvalidOutputFormat):
		return issue.InvalidOutputFormatId, true
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.ConfigLoadFailedId, true
	default:
		return 0, false
	}
}

// renderIssue writes the catalog help for err to w. Errors without a
// catalog entry are ignored.
func renderIssue(w io.Writer, err error, scheme config.ColorScheme) {
	id, ok := issueIdFor(err)
	if !ok {
		return
	}
	renderIssueId(w, id, scheme)
}

func renderIssueId(w io.Writer, id issue.Id, scheme config.ColorScheme) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	rendered, err := iss.Render(scheme.GlamourStyle())
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

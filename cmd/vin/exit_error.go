// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/zwilson999/vin-decoder/pkg/types"
)

// ExitError carries the exit status of a failed command out of a RunE
// handler: types.ExitInvalid when a VIN fails under --strict or cannot be
// explained, types.ExitUsage for a malformed command line. Execute turns it
// into the process exit status via exitCodeFor.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the wrapped error's message, or the bare status when there is none.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "vin: exit status " + e.Code.String()
	}
	return fmt.Sprintf("%v (exit status %s)", e.Err, e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

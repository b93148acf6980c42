// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/zwilson999/vin-decoder/pkg/types"

	"github.com/spf13/cobra"
)

// ErrInvalidArgumentCount is the sentinel error wrapped by InvalidArgumentCountError.
var ErrInvalidArgumentCount = errors.New("invalid argument count")

// InvalidArgumentCountError is returned when a command that takes one VIN
// receives zero or several positional arguments.
type InvalidArgumentCountError struct {
	Got int
}

// Error implements the error interface.
func (e *InvalidArgumentCountError) Error() string {
	return fmt.Sprintf("expected exactly one VIN argument, got %d", e.Got)
}

// Unwrap returns ErrInvalidArgumentCount for errors.Is() compatibility.
func (e *InvalidArgumentCountError) Unwrap() error { return ErrInvalidArgumentCount }

// exactlyOneVIN is a cobra.PositionalArgs that fails with a usage exit code
// unless exactly one argument is given.
func exactlyOneVIN(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &ExitError{Code: types.ExitUsage, Err: &InvalidArgumentCountError{Got: len(args)}}
	}
	return nil
}

// SPDX-License-Identifier: MPL-2.0

package output

import (
	"errors"
	"fmt"
)

const (
	// FormatText prints styled key/value lines.
	FormatText Format = "text"
	// FormatJSON prints an indented JSON object.
	FormatJSON Format = "json"
	// FormatTOML prints a TOML document.
	FormatTOML Format = "toml"
	// FormatCUE prints CUE source.
	FormatCUE Format = "cue"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid output format")

type (
	// Format selects how a record is written.
	Format string

	// InvalidFormatError is returned when a Format value is not recognized.
	InvalidFormatError struct {
		Value Format
	}
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatTOML, FormatCUE}
}

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// IsValid returns whether the Format is supported.
func (f Format) IsValid() (bool, []error) {
	for _, known := range Formats() {
		if f == known {
			return true, nil
		}
	}
	return false, []error{&InvalidFormatError{Value: f}}
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, toml, cue)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

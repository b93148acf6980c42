// SPDX-License-Identifier: MPL-2.0

package vin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is the sentinel error wrapped by InvalidCharacterError.
	ErrInvalidCharacter = errors.New("invalid VIN character")
	// ErrInvalidLength is the sentinel error wrapped by InvalidLengthError.
	ErrInvalidLength = errors.New("invalid VIN length")
	// ErrInvalidPosition is returned when a weight is requested for a position outside 1..17.
	ErrInvalidPosition = errors.New("invalid VIN position")
)

type (
	// InvalidCharacterError is returned when a character has neither a digit
	// value nor a transliteration table entry.
	InvalidCharacterError struct {
		// Position is the 1-based position of the offending character.
		Position int
		Char     rune
	}

	// InvalidLengthError is returned when the checksum is requested for an
	// input that is not exactly Length characters long.
	InvalidLengthError struct {
		Length int
	}
)

// Error implements the error interface.
func (e *InvalidCharacterError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("invalid VIN character %q: no checksum value", e.Char)
	}
	return fmt.Sprintf("invalid VIN character %q at position %d: no checksum value", e.Char, e.Position)
}

// Unwrap returns ErrInvalidCharacter for errors.Is() compatibility.
func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid VIN length %d (must be %d)", e.Length, Length)
}

// Unwrap returns ErrInvalidLength for errors.Is() compatibility.
func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }

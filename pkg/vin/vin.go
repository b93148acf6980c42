// SPDX-License-Identifier: MPL-2.0

package vin

import "strings"

// VIN is a Vehicle Identification Number as entered by the user, after
// normalization. The type does not guarantee validity; use Validate.
type VIN string

// Normalize trims surrounding whitespace and uppercases raw.
func Normalize(raw string) VIN {
	return VIN(strings.ToUpper(strings.TrimSpace(raw)))
}

// String returns the string representation of the VIN.
func (v VIN) String() string { return string(v) }

// CheckDigit returns the character at position 9, or false when the VIN is
// too short to have one.
func (v VIN) CheckDigit() (rune, bool) {
	i := 0
	for _, r := range string(v) {
		if i == checkDigitIndex {
			return r, true
		}
		i++
	}
	return 0, false
}

// SPDX-License-Identifier: MPL-2.0

package vin

import (
	"strings"
	"unicode/utf8"
)

// disallowedLetters are the letters a VIN never contains, to avoid confusion
// with the digits 1 and 0.
const disallowedLetters = "IOQ"

// HasValidLength reports whether vin is exactly 17 characters long.
// Multi-byte characters count once.
func HasValidLength(vin string) bool {
	return utf8.RuneCountInString(vin) == Length
}

// HasValidCharacters reports whether vin is free of the letters I, O and Q.
// Other characters are not inspected; the checksum rejects them.
func HasValidCharacters(vin string) bool {
	return !strings.ContainsAny(vin, disallowedLetters)
}

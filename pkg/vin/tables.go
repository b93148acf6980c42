// SPDX-License-Identifier: MPL-2.0

package vin

const (
	// Length is the number of characters in a post-1981 VIN.
	Length = 17

	// CheckDigitPosition is the 1-based position of the check digit.
	CheckDigitPosition = 9

	// checkDigitIndex is the 0-based index of the check digit.
	checkDigitIndex = CheckDigitPosition - 1

	// checksumModulus is the divisor applied to the weighted sum.
	checksumModulus = 11

	// checkDigitTen is the check digit character for a remainder of 10.
	checkDigitTen = 'X'
)

var (
	// transliteration maps 'A'..'Z' (indexed by letter-'A') to its checksum value.
	// Zero marks letters with no entry: I, O and Q never appear in a VIN.
	transliteration = [26]int{
		// A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S, T, U, V, W, X, Y, Z
		1, 2, 3, 4, 5, 6, 7, 8, 0, 1, 2, 3, 4, 5, 0, 7, 0, 9, 2, 3, 4, 5, 6, 7, 8, 9,
	}

	// weights holds the multiplier for positions 1..17 (indexed by position-1).
	weights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}
)

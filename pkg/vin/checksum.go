// SPDX-License-Identifier: MPL-2.0

package vin

import (
	"fmt"
	"unicode/utf8"
)

// Transliterate returns the checksum value of a single VIN character.
// Digits map to themselves and letters go through the transliteration table.
// Any other rune, including lowercase letters and I, O, Q, fails with
// ErrInvalidCharacter.
func Transliterate(r rune) (int, error) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), nil
	case r >= 'A' && r <= 'Z':
		if v := transliteration[r-'A']; v != 0 {
			return v, nil
		}
	}
	return 0, &InvalidCharacterError{Char: r}
}

// Weight returns the multiplier for a 1-based VIN position.
func Weight(position int) (int, error) {
	if position < 1 || position > Length {
		return 0, fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidPosition, position, Length)
	}
	return weights[position-1], nil
}

// IsValidChecksum reports whether the check digit at position 9 matches the
// weighted checksum of the whole VIN.
//
// The input must be exactly 17 characters drawn from the digits and the
// letters of the transliteration table; otherwise an *InvalidLengthError or
// *InvalidCharacterError is returned.
func IsValidChecksum(vin string) (bool, error) {
	remainder, err := checksumRemainder(vin)
	if err != nil {
		return false, err
	}
	// A computed remainder means every character was ASCII, so bytes index characters.
	return matchesRemainder(rune(vin[checkDigitIndex]), remainder), nil
}

// ComputeCheckDigit returns the check digit ('0'-'9' or 'X') that makes the
// VIN's checksum valid. The current character at position 9 does not affect
// the result.
func ComputeCheckDigit(vin string) (rune, error) {
	remainder, err := checksumRemainder(vin)
	if err != nil {
		return 0, err
	}
	return checkDigitFor(remainder), nil
}

// checksumRemainder computes the weighted sum of vin modulo 11.
func checksumRemainder(vin string) (int, error) {
	sum, err := weightedSum(vin, nil)
	if err != nil {
		return 0, err
	}
	return sum % checksumModulus, nil
}

// weightedSum returns the sum of value*weight over all positions. When visit
// is non-nil it is called for every position with its value and weight.
// Length and positions count characters, not bytes.
func weightedSum(vin string, visit func(index int, char rune, value, weight int)) (int, error) {
	if n := utf8.RuneCountInString(vin); n != Length {
		return 0, &InvalidLengthError{Length: n}
	}

	sum, i := 0, 0
	for _, char := range vin {
		value, err := positionValue(i, char)
		if err != nil {
			return 0, err
		}
		weight := weights[i]
		if visit != nil {
			visit(i, char, value, weight)
		}
		sum += value * weight
		i++
	}
	return sum, nil
}

// positionValue transliterates the character at index. The check digit
// position reads 'X' as 10, its check-digit meaning, instead of the letter
// table value. Its weight is 0 so the choice never changes the sum.
func positionValue(index int, char rune) (int, error) {
	if index == checkDigitIndex && char == checkDigitTen {
		return checksumModulus - 1, nil
	}
	value, err := Transliterate(char)
	if err != nil {
		return 0, &InvalidCharacterError{Position: index + 1, Char: char}
	}
	return value, nil
}

// matchesRemainder compares a check digit character against a remainder.
func matchesRemainder(checkDigit rune, remainder int) bool {
	if checkDigit == checkDigitTen {
		return remainder == checksumModulus-1
	}
	if checkDigit >= '0' && checkDigit <= '9' {
		return int(checkDigit-'0') == remainder
	}
	return false
}

func checkDigitFor(remainder int) rune {
	if remainder == checksumModulus-1 {
		return checkDigitTen
	}
	return rune('0' + remainder)
}

// SPDX-License-Identifier: MPL-2.0

// Package vin validates Vehicle Identification Numbers.
//
// Three independent checks are provided: length (exactly 17 characters),
// character set (no 'I', 'O' or 'Q') and the position-weighted check digit
// at position 9. The check digit is computed by transliterating every
// character to a number, multiplying it by the weight of its position and
// taking the sum modulo 11; a remainder of 10 is written as 'X'.
//
// The transliteration and weight tables are package-level constants and every
// function is pure, so the package is safe for concurrent use without locking.
//
// Input normalization (trimming and uppercasing) is the caller's
// responsibility; Normalize is provided for that purpose. The checksum
// functions reject lowercase letters with ErrInvalidCharacter rather than
// guessing.
package vin

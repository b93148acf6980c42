// SPDX-License-Identifier: MPL-2.0

package vin

import (
	"errors"
	"testing"
)

func TestIsValidChecksum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vin  string
		want bool
	}{
		{name: "honda accord reference", vin: "1HGCM82633A004352", want: true},
		{name: "all ones", vin: "11111111111111111", want: true},
		{name: "chevrolet", vin: "5GZCZ43D13S812715", want: true},
		{name: "honda civic", vin: "JHMCM56557C404453", want: true},
		{name: "check digit X with remainder 10", vin: "1M8GDM9AXKP042788", want: true},
		{name: "altered last character", vin: "1HGCM82633A004351", want: false},
		{name: "altered check digit", vin: "1HGCM82643A004352", want: false},
		{name: "remainder 10 with digit 0", vin: "1M8GDM9A0KP042788", want: false},
		{name: "X with remainder other than 10", vin: "1HGCM826X3A004352", want: false},
		{name: "letter other than X in check position", vin: "1HGCM826A3A004352", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := IsValidChecksum(tt.vin)
			if err != nil {
				t.Fatalf("IsValidChecksum(%q) returned error: %v", tt.vin, err)
			}
			if got != tt.want {
				t.Errorf("IsValidChecksum(%q) = %v, want %v", tt.vin, got, tt.want)
			}
		})
	}
}

func TestIsValidChecksum_InvalidCharacter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		vin          string
		wantPosition int
		wantChar     rune
	}{
		{name: "letter I", vin: "1HGCM8263IA004352", wantPosition: 10, wantChar: 'I'},
		{name: "letter O", vin: "OHGCM82633A004352", wantPosition: 1, wantChar: 'O'},
		{name: "letter Q", vin: "1HGCM82633A00435Q", wantPosition: 17, wantChar: 'Q'},
		{name: "lowercase", vin: "1hgcm82633a004352", wantPosition: 2, wantChar: 'h'},
		{name: "punctuation", vin: "1HGCM-2633A004352", wantPosition: 6, wantChar: '-'},
		{name: "I in check position", vin: "1HGCM826I3A004352", wantPosition: 9, wantChar: 'I'},
		{name: "two-byte letter", vin: "1HGCM82633A00435É", wantPosition: 17, wantChar: 'É'},
		{name: "two-byte letter before ASCII", vin: "1ÉGCM82633A004352", wantPosition: 2, wantChar: 'É'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := IsValidChecksum(tt.vin)
			if got {
				t.Errorf("IsValidChecksum(%q) = true on error path", tt.vin)
			}
			if !errors.Is(err, ErrInvalidCharacter) {
				t.Fatalf("error does not wrap ErrInvalidCharacter: %v", err)
			}

			var charErr *InvalidCharacterError
			if !errors.As(err, &charErr) {
				t.Fatalf("error should be *InvalidCharacterError, got: %T", err)
			}
			if charErr.Position != tt.wantPosition {
				t.Errorf("Position = %d, want %d", charErr.Position, tt.wantPosition)
			}
			if charErr.Char != tt.wantChar {
				t.Errorf("Char = %q, want %q", charErr.Char, tt.wantChar)
			}
		})
	}
}

func TestIsValidChecksum_InvalidLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		vin        string
		wantLength int
	}{
		{"", 0},
		{"SHORT", 5},
		{"1HGCM82633A00435", 16},
		{"1HGCM82633A0043521", 18},
		{"1HGCM82633A0043É", 16},
	}

	for _, tt := range tests {
		_, err := IsValidChecksum(tt.vin)
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("IsValidChecksum(%q) error = %v, want ErrInvalidLength", tt.vin, err)
		}

		var lenErr *InvalidLengthError
		if errors.As(err, &lenErr) && lenErr.Length != tt.wantLength {
			t.Errorf("IsValidChecksum(%q): InvalidLengthError.Length = %d, want %d", tt.vin, lenErr.Length, tt.wantLength)
		}
	}
}

func TestIsValidChecksum_SingleCharacterEdits(t *testing.T) {
	t.Parallel()

	const valid = "1HGCM82633A004352"

	for i := range Length {
		if i == checkDigitIndex {
			continue
		}

		value, err := Transliterate(rune(valid[i]))
		if err != nil {
			t.Fatalf("Transliterate(%q): %v", valid[i], err)
		}

		edited := []byte(valid)
		edited[i] = byte('0' + (value+1)%10)

		got, err := IsValidChecksum(string(edited))
		if err != nil {
			t.Fatalf("IsValidChecksum(%q) returned error: %v", edited, err)
		}
		if got {
			t.Errorf("edit at position %d (%q) still passes the checksum", i+1, edited)
		}
	}
}

func TestTransliterate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		char rune
		want int
	}{
		{'0', 0}, {'5', 5}, {'9', 9},
		{'A', 1}, {'H', 8}, {'J', 1}, {'N', 5}, {'P', 7},
		{'R', 9}, {'S', 2}, {'X', 7}, {'Z', 9},
	}

	for _, tt := range tests {
		got, err := Transliterate(tt.char)
		if err != nil {
			t.Errorf("Transliterate(%q) returned error: %v", tt.char, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Transliterate(%q) = %d, want %d", tt.char, got, tt.want)
		}
	}

	for _, r := range []rune{'I', 'O', 'Q', 'a', ' ', '-', 'é'} {
		if _, err := Transliterate(r); !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("Transliterate(%q) error = %v, want ErrInvalidCharacter", r, err)
		}
	}
}

func TestTransliterationTableRange(t *testing.T) {
	t.Parallel()

	for r := 'A'; r <= 'Z'; r++ {
		v, err := Transliterate(r)
		switch r {
		case 'I', 'O', 'Q':
			if err == nil {
				t.Errorf("Transliterate(%q) = %d, want error", r, v)
			}
		default:
			if err != nil || v < 1 || v > 9 {
				t.Errorf("Transliterate(%q) = %d, %v; want value in [1,9]", r, v, err)
			}
		}
	}
}

func TestWeight(t *testing.T) {
	t.Parallel()

	want := []int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}
	for i, w := range want {
		got, err := Weight(i + 1)
		if err != nil {
			t.Fatalf("Weight(%d) returned error: %v", i+1, err)
		}
		if got != w {
			t.Errorf("Weight(%d) = %d, want %d", i+1, got, w)
		}
	}

	for _, pos := range []int{-1, 0, 18} {
		if _, err := Weight(pos); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("Weight(%d) error = %v, want ErrInvalidPosition", pos, err)
		}
	}
}

func TestComputeCheckDigit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		vin  string
		want rune
	}{
		{vin: "1HGCM82633A004352", want: '3'},
		{vin: "1HGCM82603A004352", want: '3'},
		{vin: "1M8GDM9A0KP042788", want: 'X'},
		{vin: "11111111111111111", want: '1'},
	}

	for _, tt := range tests {
		got, err := ComputeCheckDigit(tt.vin)
		if err != nil {
			t.Fatalf("ComputeCheckDigit(%q) returned error: %v", tt.vin, err)
		}
		if got != tt.want {
			t.Errorf("ComputeCheckDigit(%q) = %q, want %q", tt.vin, got, tt.want)
		}
	}

	if _, err := ComputeCheckDigit("SHORT"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("ComputeCheckDigit(SHORT) error = %v, want ErrInvalidLength", err)
	}
}

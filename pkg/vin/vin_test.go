// SPDX-License-Identifier: MPL-2.0

package vin

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want VIN
	}{
		{raw: "1HGCM82633A004352", want: "1HGCM82633A004352"},
		{raw: "1hgcm82633a004352", want: "1HGCM82633A004352"},
		{raw: "  1hgcm82633a004352\n", want: "1HGCM82633A004352"},
		{raw: "\t", want: ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalize_FixesLowercaseChecksum(t *testing.T) {
	t.Parallel()

	raw := " 1hgcm82633a004352 "
	if _, err := IsValidChecksum(raw); err == nil {
		t.Fatal("expected raw lowercase input to fail the checksum")
	}

	ok, err := IsValidChecksum(Normalize(raw).String())
	if err != nil {
		t.Fatalf("IsValidChecksum(normalized) returned error: %v", err)
	}
	if !ok {
		t.Error("normalized reference VIN should pass the checksum")
	}
}

func TestVINCheckDigit(t *testing.T) {
	t.Parallel()

	if got, ok := VIN("1HGCM82633A004352").CheckDigit(); !ok || got != '3' {
		t.Errorf("CheckDigit() = %q, %v; want '3', true", got, ok)
	}
	if got, ok := VIN("1M8GDM9AX").CheckDigit(); !ok || got != 'X' {
		t.Errorf("CheckDigit() = %q, %v; want 'X', true", got, ok)
	}
	if got, ok := VIN("ÉÉÉÉÉÉÉÉ7").CheckDigit(); !ok || got != '7' {
		t.Errorf("CheckDigit() = %q, %v; want '7', true", got, ok)
	}
	if _, ok := VIN("SHORT").CheckDigit(); ok {
		t.Error("CheckDigit() on a 5-character VIN should report false")
	}
}

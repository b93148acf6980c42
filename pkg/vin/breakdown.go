// SPDX-License-Identifier: MPL-2.0

package vin

type (
	// Position is one row of a checksum breakdown.
	Position struct {
		// Index is the 1-based position in the VIN.
		Index   int
		Char    rune
		Value   int
		Weight  int
		Product int
	}

	// Breakdown shows how a VIN's checksum was derived.
	Breakdown struct {
		Positions  [Length]Position
		Sum        int
		Remainder  int
		CheckDigit rune
		// Expected is the check digit the remainder calls for.
		Expected rune
	}
)

// Explain computes the checksum of vin and returns every intermediate value.
// It fails under the same conditions as IsValidChecksum.
func Explain(vin string) (Breakdown, error) {
	var b Breakdown
	sum, err := weightedSum(vin, func(index int, char rune, value, weight int) {
		b.Positions[index] = Position{
			Index:   index + 1,
			Char:    char,
			Value:   value,
			Weight:  weight,
			Product: value * weight,
		}
	})
	if err != nil {
		return Breakdown{}, err
	}

	b.Sum = sum
	b.Remainder = sum % checksumModulus
	b.CheckDigit = b.Positions[checkDigitIndex].Char
	b.Expected = checkDigitFor(b.Remainder)
	return b, nil
}

// Valid reports whether the VIN's check digit matches the remainder.
func (b Breakdown) Valid() bool {
	return matchesRemainder(b.CheckDigit, b.Remainder)
}

// SPDX-License-Identifier: MPL-2.0

package vin

type (
	// Report aggregates the three independent VIN checks.
	Report struct {
		VIN           VIN
		ValidLength   bool
		ValidFormat   bool
		ValidChecksum bool
		// ChecksumErr is set when the checksum could not be computed, for
		// example because of a wrong length or an untransliterable character.
		ChecksumErr error
	}

	// Record is the serializable form of a Report.
	Record struct {
		VIN           string `json:"vin" toml:"vin"`
		ValidLength   bool   `json:"valid_length" toml:"valid_length"`
		ValidFormat   bool   `json:"valid_format" toml:"valid_format"`
		ValidChecksum bool   `json:"valid_checksum" toml:"valid_checksum"`
		ChecksumError string `json:"checksum_error,omitempty" toml:"checksum_error,omitempty"`
	}
)

// Validate runs all three checks unconditionally. A malformed length or a
// disallowed letter does not skip the checksum; its failure is recorded in
// ChecksumErr instead.
func Validate(v VIN) Report {
	s := v.String()
	valid, err := IsValidChecksum(s)
	return Report{
		VIN:           v,
		ValidLength:   HasValidLength(s),
		ValidFormat:   HasValidCharacters(s),
		ValidChecksum: valid && err == nil,
		ChecksumErr:   err,
	}
}

// Valid returns true if every check passed.
func (r Report) Valid() bool {
	return r.ValidLength && r.ValidFormat && r.ValidChecksum && r.ChecksumErr == nil
}

// Record converts the report into its serializable form.
func (r Report) Record() Record {
	rec := Record{
		VIN:           r.VIN.String(),
		ValidLength:   r.ValidLength,
		ValidFormat:   r.ValidFormat,
		ValidChecksum: r.ValidChecksum,
	}
	if r.ChecksumErr != nil {
		rec.ChecksumError = r.ChecksumErr.Error()
	}
	return rec
}

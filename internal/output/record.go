// SPDX-License-Identifier: MPL-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/zwilson999/vin-decoder/pkg/cueutil"
	"github.com/zwilson999/vin-decoder/pkg/vin"

	"github.com/pelletier/go-toml/v2"
)

// keyWidth pads record keys in text output.
const keyWidth = len("valid_checksum") + 2

// Write renders rec to w in format f.
func Write(w io.Writer, f Format, rec vin.Record) error {
	var (
		out []byte
		err error
	)

	switch f {
	case FormatText:
		return writeText(w, rec)
	case FormatJSON:
		out, err = json.MarshalIndent(rec, "", "  ")
		out = append(out, '\n')
	case FormatTOML:
		out, err = toml.Marshal(rec)
	case FormatCUE:
		out, err = cueutil.Encode(rec)
	default:
		return &InvalidFormatError{Value: f}
	}
	if err != nil {
		return fmt.Errorf("encode %s record: %w", f, err)
	}

	_, err = w.Write(out)
	return err
}

func writeText(w io.Writer, rec vin.Record) error {
	checksum := boolValue(rec.ValidChecksum)
	if rec.ChecksumError != "" {
		checksum = ErrorStyle.Render("error: " + rec.ChecksumError)
	}

	lines := []struct{ key, value string }{
		{"vin", rec.VIN},
		{"valid_length", boolValue(rec.ValidLength)},
		{"valid_format", boolValue(rec.ValidFormat)},
		{"valid_checksum", checksum},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s%s\n", KeyStyle.Render(fmt.Sprintf("%-*s", keyWidth, l.key)), l.value); err != nil {
			return err
		}
	}
	return nil
}

func boolValue(ok bool) string {
	if ok {
		return SuccessStyle.Render(strconv.FormatBool(ok))
	}
	return ErrorStyle.Render(strconv.FormatBool(ok))
}

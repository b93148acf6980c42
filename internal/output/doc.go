// SPDX-License-Identifier: MPL-2.0

// Package output renders VIN validation results for the terminal.
//
// A record can be written as styled text, JSON, TOML or CUE. A checksum
// breakdown is rendered as a lipgloss table. The shared color palette used
// across the CLI lives here as well.
package output

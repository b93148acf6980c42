// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for vin.
//
// The root command validates a single VIN and prints a record with the
// length, character and checksum results. Subcommands explain the checksum
// computation and manage the configuration file.
package cmd

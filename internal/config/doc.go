// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/vin/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/vin/config.cue on macOS, %APPDATA%\vin\config.cue
// on Windows), then from ./config.cue, and may be overridden by VIN_* environment
// variables. Files are validated against the embedded CUE schema (config_schema.cue).
package config

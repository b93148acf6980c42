// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE helpers: error formatting with JSON-path
// prefixes, an input size guard for files read from disk, and encoding of Go
// values as CUE source.
package cueutil

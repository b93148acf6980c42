// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types shared by the CLI and the
// domain packages.
//
// This package is a leaf dependency: it imports only the standard library.
package types

// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It holds a catalog of Markdown help texts for the failures a user can run
// into (wrong argument count, untransliterable characters, configuration
// problems) and an ActionableError type that carries the failed operation,
// the resource involved and suggestions for fixing it.
package issue

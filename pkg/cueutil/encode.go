// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
)

// Encode converts a Go value into formatted CUE source. Struct fields are
// named after their json tags. A top-level struct is emitted as file-level
// fields, without the enclosing braces.
func Encode(v any) ([]byte, error) {
	value := cuecontext.New().Encode(v)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("encode CUE value: %w", err)
	}

	node := value.Syntax()
	if st, ok := node.(*ast.StructLit); ok {
		node = &ast.File{Decls: st.Elts}
	}

	out, err := format.Node(node)
	if err != nil {
		return nil, fmt.Errorf("format CUE value: %w", err)
	}
	return out, nil
}

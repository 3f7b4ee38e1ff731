// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

import (
	"io"
	"strings"
)

// Emit writes v to w. The first write error from w is returned unchanged;
// whatever was written before it should be discarded by the caller.
func Emit(w io.Writer, v Serializable) error {
	return v.SerializeYAML(newEmitter(w))
}

// EmitString returns v's text.
func EmitString(v Serializable) (string, error) {
	var sb strings.Builder
	if err := Emit(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

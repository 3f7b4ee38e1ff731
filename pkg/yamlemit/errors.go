// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

import (
	"fmt"
)

// UnsupportedShapeError is returned for value shapes that have no textual
// representation (tuple structs and tuple variants).
type UnsupportedShapeError struct {
	Shape string
	Name  string
}

func (e *UnsupportedShapeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("Unsupported value shape: %s", e.Shape)
	}
	return fmt.Sprintf("Unsupported value shape: %s '%s'", e.Shape, e.Name)
}

// InvalidUTF8Error is returned by SerializeBytes for buffers that are not
// valid UTF-8.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("Expected bytes to be valid UTF-8, but found invalid sequence at offset %d", e.Offset)
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

// unsupportedShape stands in for tuple structs and tuple variants. Values
// produced by this module never take these shapes; hand-written Serializable
// implementations that do get an *UnsupportedShapeError instead of output.
type unsupportedShape struct {
	err *UnsupportedShapeError
}

var _ TupleSerializer = unsupportedShape{}

func (u unsupportedShape) Field(Serializable) error { return u.err }
func (u unsupportedShape) End() error               { return u.err }

// SerializeTupleStruct always fails. The returned TupleSerializer is non-nil
// and reports the same error from every method.
func (e *Emitter) SerializeTupleStruct(name string, _ int) (TupleSerializer, error) {
	err := &UnsupportedShapeError{Shape: "tuple struct", Name: name}
	return unsupportedShape{err}, err
}

// SerializeTupleVariant always fails, see SerializeTupleStruct.
func (e *Emitter) SerializeTupleVariant(name string, _ uint32, variant string, _ int) (TupleSerializer, error) {
	err := &UnsupportedShapeError{Shape: "tuple variant", Name: name + "::" + variant}
	return unsupportedShape{err}, err
}

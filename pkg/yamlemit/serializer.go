// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

// Serializable is implemented by values that know how to describe themselves.
// SerializeYAML must call exactly one method on s (and drive the returned
// adapter to End, if any).
type Serializable interface {
	SerializeYAML(s Serializer) error
}

// SerializableFunc adapts a function to Serializable.
type SerializableFunc func(s Serializer) error

func (f SerializableFunc) SerializeYAML(s Serializer) error { return f(s) }

// Serializer receives the shape of a value. Emitter is the only
// implementation in this package.
type Serializer interface {
	SerializeBool(v bool) error
	SerializeInt(v int64) error
	SerializeUint(v uint64) error
	SerializeFloat32(v float32) error
	SerializeFloat64(v float64) error
	SerializeChar(v rune) error
	SerializeString(v string) error
	SerializeBytes(v []byte) error

	SerializeNone() error
	SerializeSome(v Serializable) error
	SerializeUnit() error
	SerializeUnitStruct(name string) error
	SerializeUnitVariant(name string, index uint32, variant string) error
	SerializeNewtypeStruct(name string, v Serializable) error
	SerializeNewtypeVariant(name string, index uint32, variant string, v Serializable) error

	// Length hints are informational; -1 means unknown.
	SerializeSeq(length int) (SeqSerializer, error)
	SerializeTuple(length int) (SeqSerializer, error)
	SerializeTupleStruct(name string, length int) (TupleSerializer, error)
	SerializeTupleVariant(name string, index uint32, variant string, length int) (TupleSerializer, error)
	SerializeMap(length int) (MapSerializer, error)
	SerializeStruct(name string, length int) (StructSerializer, error)
	SerializeStructVariant(name string, index uint32, variant string, length int) (StructSerializer, error)
}

type SeqSerializer interface {
	Element(v Serializable) error
	End() error
}

type MapSerializer interface {
	Key(k Serializable) error
	Value(v Serializable) error
	Entry(k, v Serializable) error
	End() error
}

// StructSerializer field names are written verbatim, never quoted.
type StructSerializer interface {
	Field(name string, v Serializable) error
	End() error
}

type TupleSerializer interface {
	Field(v Serializable) error
	End() error
}

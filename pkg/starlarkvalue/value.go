// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package starlarkvalue

import (
	"fmt"

	"carvel.dev/yamlemit/pkg/yamlemit"
	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/starlarkstruct"
)

// Value adapts a starlark.Value to yamlemit.Serializable.
type Value struct {
	val starlark.Value
}

var _ yamlemit.Serializable = Value{}

func Of(val starlark.Value) Value {
	return Value{val}
}

func (v Value) SerializeYAML(s yamlemit.Serializer) error {
	switch typedVal := v.val.(type) {
	case nil, starlark.NoneType:
		return s.SerializeNone()

	case starlark.Bool:
		return s.SerializeBool(bool(typedVal))

	case starlark.String:
		return s.SerializeString(string(typedVal))

	case starlark.Int:
		if i, ok := typedVal.Int64(); ok {
			return s.SerializeInt(i)
		}
		if u, ok := typedVal.Uint64(); ok {
			return s.SerializeUint(u)
		}
		// arbitrary precision; decimal digits are valid UTF-8
		return s.SerializeBytes([]byte(typedVal.String()))

	case starlark.Float:
		return s.SerializeFloat64(float64(typedVal))

	case *starlark.Dict:
		return v.serializeDict(s, typedVal)

	case *starlarkstruct.Struct:
		return v.serializeStruct(s, typedVal)

	case *starlark.List:
		return v.serializeIterable(s, typedVal, typedVal.Len())

	case starlark.Tuple:
		return v.serializeIterable(s, typedVal, typedVal.Len())

	case *starlark.Set:
		return v.serializeIterable(s, typedVal, typedVal.Len())

	default:
		return fmt.Errorf("Unsupported starlark value of type %s", v.val.Type())
	}
}

func (Value) serializeDict(s yamlemit.Serializer, dict *starlark.Dict) error {
	items := dict.Items()

	m, err := s.SerializeMap(len(items))
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.Len() != 2 {
			panic("dict item is not KV")
		}
		if err := m.Entry(Of(item.Index(0)), Of(item.Index(1))); err != nil {
			return err
		}
	}
	return m.End()
}

func (Value) serializeStruct(s yamlemit.Serializer, val *starlarkstruct.Struct) error {
	// AttrNames is sorted, unlike the underlying map
	names := val.AttrNames()

	st, err := s.SerializeStruct("struct", len(names))
	if err != nil {
		return err
	}
	for _, name := range names {
		attr, err := val.Attr(name)
		if err != nil {
			return err
		}
		if err := st.Field(name, Of(attr)); err != nil {
			return err
		}
	}
	return st.End()
}

func (Value) serializeIterable(s yamlemit.Serializer, iterable starlark.Iterable, length int) error {
	seq, err := s.SerializeSeq(length)
	if err != nil {
		return err
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var x starlark.Value
	for iter.Next(&x) {
		if err := seq.Element(Of(x)); err != nil {
			return err
		}
	}
	return seq.End()
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlvalue

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"reflect"
	"sort"

	"carvel.dev/yamlemit/pkg/yamlemit"
)

var (
	serializableType  = reflect.TypeOf((*yamlemit.Serializable)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// UnsupportedTypeError is returned for Go types with no textual form.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Unsupported type %s", e.Type)
}

// Value wraps an arbitrary Go value.
type Value struct {
	val interface{}
}

var _ yamlemit.Serializable = Value{}

// Of returns val as a Serializable. Values that already implement
// yamlemit.Serializable are returned unchanged.
func Of(val interface{}) yamlemit.Serializable {
	if s, ok := val.(yamlemit.Serializable); ok {
		return s
	}
	return Value{val}
}

func (v Value) SerializeYAML(s yamlemit.Serializer) error {
	return serializeValue(s, reflect.ValueOf(v.val))
}

// Fprint writes val to w.
func Fprint(w io.Writer, val interface{}) error {
	return yamlemit.Emit(w, Of(val))
}

func Marshal(val interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, val); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MarshalString(val interface{}) (string, error) {
	return yamlemit.EmitString(Of(val))
}

type reflected struct {
	val reflect.Value
}

func (r reflected) SerializeYAML(s yamlemit.Serializer) error {
	return serializeValue(s, r.val)
}

func serializeValue(s yamlemit.Serializer, val reflect.Value) error {
	if !val.IsValid() {
		return s.SerializeNone()
	}

	typ := val.Type()
	if typ.Implements(serializableType) && !isNilRef(val) {
		return val.Interface().(yamlemit.Serializable).SerializeYAML(s)
	}
	if typ.Kind() != reflect.Ptr && reflect.PtrTo(typ).Implements(serializableType) {
		return addressable(val).Addr().Interface().(yamlemit.Serializable).SerializeYAML(s)
	}
	if typ.Implements(textMarshalerType) && !isNilRef(val) {
		text, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return err
		}
		return s.SerializeString(string(text))
	}

	switch val.Kind() {
	case reflect.Bool:
		return s.SerializeBool(val.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.SerializeInt(val.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.SerializeUint(val.Uint())

	case reflect.Float32:
		return s.SerializeFloat32(float32(val.Float()))

	case reflect.Float64:
		return s.SerializeFloat64(val.Float())

	case reflect.String:
		return s.SerializeString(val.String())

	case reflect.Ptr:
		if val.IsNil() {
			return s.SerializeNone()
		}
		return s.SerializeSome(reflected{val.Elem()})

	case reflect.Interface:
		if val.IsNil() {
			return s.SerializeNone()
		}
		return serializeValue(s, val.Elem())

	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return s.SerializeBytes(val.Bytes())
		}
		return serializeSeq(s, val)

	case reflect.Array:
		return serializeSeq(s, val)

	case reflect.Map:
		return serializeMap(s, val)

	case reflect.Struct:
		return serializeStruct(s, val)

	default:
		return &UnsupportedTypeError{typ}
	}
}

// addressable returns val itself when it can be addressed, otherwise a copy
// that can.
func addressable(val reflect.Value) reflect.Value {
	if val.CanAddr() {
		return val
	}
	ptr := reflect.New(val.Type())
	ptr.Elem().Set(val)
	return ptr.Elem()
}

func isNilRef(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		return val.IsNil()
	default:
		return false
	}
}

func serializeSeq(s yamlemit.Serializer, val reflect.Value) error {
	seq, err := s.SerializeSeq(val.Len())
	if err != nil {
		return err
	}
	for i := 0; i < val.Len(); i++ {
		if err := seq.Element(reflected{val.Index(i)}); err != nil {
			return err
		}
	}
	return seq.End()
}

func serializeMap(s yamlemit.Serializer, val reflect.Value) error {
	keys := val.MapKeys()
	sortKeys(keys)

	m, err := s.SerializeMap(len(keys))
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := m.Entry(reflected{key}, reflected{val.MapIndex(key)}); err != nil {
			return err
		}
	}
	return m.End()
}

// sortKeys orders map keys by their text, then by type for equal text.
func sortKeys(keys []reflect.Value) {
	texts := make(map[int]string, len(keys))
	for i, key := range keys {
		texts[i] = fmt.Sprint(key.Interface())
	}
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if texts[idx[a]] != texts[idx[b]] {
			return texts[idx[a]] < texts[idx[b]]
		}
		return keys[idx[a]].Type().String() < keys[idx[b]].Type().String()
	})

	sorted := make([]reflect.Value, len(keys))
	for i, j := range idx {
		sorted[i] = keys[j]
	}
	copy(keys, sorted)
}

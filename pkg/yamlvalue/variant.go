// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlvalue

import (
	"fmt"
	"reflect"

	"carvel.dev/yamlemit/pkg/yamlemit"
)

// Char is a rune written as its character rather than its code point.
type Char rune

func (c Char) SerializeYAML(s yamlemit.Serializer) error {
	return s.SerializeChar(rune(c))
}

// Text is written verbatim, without quoting. It must be valid UTF-8.
type Text []byte

func (t Text) SerializeYAML(s yamlemit.Serializer) error {
	return s.SerializeBytes(t)
}

type unitVariant struct {
	name string
}

// UnitVariant is an enum variant without data, written as its name.
func UnitVariant(name string) yamlemit.Serializable {
	return unitVariant{name}
}

func (v unitVariant) SerializeYAML(s yamlemit.Serializer) error {
	return s.SerializeUnitVariant("", 0, v.name)
}

type newtypeVariant struct {
	name string
	val  interface{}
}

// NewtypeVariant is an enum variant wrapping one value, written as
// "name: value".
func NewtypeVariant(name string, val interface{}) yamlemit.Serializable {
	return newtypeVariant{name, val}
}

func (v newtypeVariant) SerializeYAML(s yamlemit.Serializer) error {
	return s.SerializeNewtypeVariant("", 0, v.name, Of(v.val))
}

type structVariant struct {
	name   string
	fields interface{}
}

// StructVariant is an enum variant with named fields taken from a struct
// (or pointer to struct) value, written as "name:" followed by the fields.
func StructVariant(name string, fields interface{}) yamlemit.Serializable {
	return structVariant{name, fields}
}

func (v structVariant) SerializeYAML(s yamlemit.Serializer) error {
	val := reflect.Indirect(reflect.ValueOf(v.fields))
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("Expected struct variant '%s' fields to be a struct, but was %T", v.name, v.fields)
	}

	fields, values := presentFields(val)

	st, err := s.SerializeStructVariant(val.Type().Name(), 0, v.name, len(fields))
	if err != nil {
		return err
	}
	return serializeFields(st, fields, values)
}

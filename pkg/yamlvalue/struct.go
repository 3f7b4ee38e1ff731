// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlvalue

import (
	"reflect"
	"strings"
	"sync"

	"carvel.dev/yamlemit/pkg/yamlemit"
)

type structField struct {
	name      string
	index     []int
	omitEmpty bool
}

// fieldCache maps reflect.Type to []structField.
var fieldCache sync.Map

func fieldsOf(typ reflect.Type) []structField {
	if cached, ok := fieldCache.Load(typ); ok {
		return cached.([]structField)
	}

	var fields []structField
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}

		name := f.Name
		var omitEmpty bool

		if tag, ok := f.Tag.Lookup("yaml"); ok {
			if tag == "-" {
				continue
			}
			pieces := strings.Split(tag, ",")
			if pieces[0] != "" {
				name = pieces[0]
			}
			for _, opt := range pieces[1:] {
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
		}

		fields = append(fields, structField{name: name, index: f.Index, omitEmpty: omitEmpty})
	}

	actual, _ := fieldCache.LoadOrStore(typ, fields)
	return actual.([]structField)
}

func presentFields(val reflect.Value) ([]structField, []reflect.Value) {
	var fields []structField
	var values []reflect.Value

	for _, f := range fieldsOf(val.Type()) {
		fieldVal := val.FieldByIndex(f.index)
		if f.omitEmpty && fieldVal.IsZero() {
			continue
		}
		fields = append(fields, f)
		values = append(values, fieldVal)
	}
	return fields, values
}

func serializeStruct(s yamlemit.Serializer, val reflect.Value) error {
	fields, values := presentFields(val)

	st, err := s.SerializeStruct(val.Type().Name(), len(fields))
	if err != nil {
		return err
	}
	return serializeFields(st, fields, values)
}

func serializeFields(st yamlemit.StructSerializer, fields []structField, values []reflect.Value) error {
	for i, f := range fields {
		if err := st.Field(f.name, reflected{values[i]}); err != nil {
			return err
		}
	}
	return st.End()
}

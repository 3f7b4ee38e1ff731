// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"reflect"

	"carvel.dev/yamlemit/pkg/yamlemit"
	"carvel.dev/yamlemit/pkg/yamlvalue"
)

// Map keeps entries in the order keys were first set and emits them in that
// order. String keys are looked up through an index; any other key is
// compared with reflect.DeepEqual.
type Map struct {
	entries []Entry
	byName  map[string]int
}

// Entry is one key/value pair of a Map.
type Entry struct {
	Key   interface{}
	Value interface{}
}

var _ yamlemit.Serializable = &Map{}

func NewMap(entries ...Entry) *Map {
	m := &Map{}
	for _, entry := range entries {
		m.Set(entry.Key, entry.Value)
	}
	return m
}

// Set replaces the value of an existing key in place or appends a new entry.
func (m *Map) Set(key, value interface{}) {
	if i := m.find(key); i >= 0 {
		m.entries[i].Value = value
		return
	}
	if name, ok := key.(string); ok {
		if m.byName == nil {
			m.byName = map[string]int{}
		}
		m.byName[name] = len(m.entries)
	}
	m.entries = append(m.entries, Entry{key, value})
}

func (m *Map) Get(key interface{}) (interface{}, bool) {
	if i := m.find(key); i >= 0 {
		return m.entries[i].Value, true
	}
	return nil, false
}

func (m *Map) Delete(key interface{}) bool {
	i := m.find(key)
	if i < 0 {
		return false
	}
	if name, ok := key.(string); ok {
		delete(m.byName, name)
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)

	for j := i; j < len(m.entries); j++ {
		if name, ok := m.entries[j].Key.(string); ok {
			m.byName[name] = j
		}
	}
	return true
}

func (m *Map) find(key interface{}) int {
	if name, ok := key.(string); ok {
		if i, found := m.byName[name]; found {
			return i
		}
		return -1
	}
	for i, entry := range m.entries {
		if _, isName := entry.Key.(string); !isName && reflect.DeepEqual(entry.Key, key) {
			return i
		}
	}
	return -1
}

func (m *Map) Keys() []interface{} {
	keys := make([]interface{}, len(m.entries))
	for i, entry := range m.entries {
		keys[i] = entry.Key
	}
	return keys
}

// Entries returns a copy of the entries in order.
func (m *Map) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// SerializeYAML writes the entries as a mapping. Keys and values go through
// yamlvalue, so nested Maps, slices and scalars are all accepted.
func (m *Map) SerializeYAML(s yamlemit.Serializer) error {
	ms, err := s.SerializeMap(m.Len())
	if err != nil {
		return err
	}
	if m != nil {
		for _, entry := range m.entries {
			if err := ms.Entry(yamlvalue.Of(entry.Key), yamlvalue.Of(entry.Value)); err != nil {
				return err
			}
		}
	}
	return ms.End()
}

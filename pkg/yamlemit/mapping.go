// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

// MapEmitter writes one "key: value" entry per line. Keys go through the
// same dispatch as values, so strings used as keys are quoted when needed.
type MapEmitter struct {
	emitter    *Emitter
	empty      bool
	pendingKey bool
}

var _ MapSerializer = &MapEmitter{}

func newMapEmitter(e *Emitter) *MapEmitter {
	return &MapEmitter{emitter: e, empty: true}
}

func (m *MapEmitter) Key(k Serializable) error {
	if m.pendingKey {
		panic("yamlemit: Key called twice without Value")
	}
	if !m.empty {
		if err := m.emitter.writeByte('\n'); err != nil {
			return err
		}
	}
	m.empty = false

	if err := m.emitter.indent(kindPreMappingKey); err != nil {
		return err
	}
	if err := k.SerializeYAML(m.emitter); err != nil {
		return err
	}
	m.emitter.enter()
	m.pendingKey = true
	return m.emitter.writeByte(':')
}

func (m *MapEmitter) Value(v Serializable) error {
	if !m.pendingKey {
		panic("yamlemit: Value called without Key")
	}
	m.pendingKey = false

	if err := v.SerializeYAML(m.emitter); err != nil {
		return err
	}
	m.emitter.leave()
	return nil
}

func (m *MapEmitter) Entry(k, v Serializable) error {
	if err := m.Key(k); err != nil {
		return err
	}
	return m.Value(v)
}

func (m *MapEmitter) End() error {
	if m.empty {
		return m.emitter.writeString("{}")
	}
	return nil
}

func (e *Emitter) SerializeMap(_ int) (MapSerializer, error) {
	return newMapEmitter(e), nil
}

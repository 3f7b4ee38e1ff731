// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

// StructEmitter writes fields as "name: value" lines. Names are known ahead
// of time and written as-is.
type StructEmitter struct {
	emitter *Emitter
	empty   bool
}

var _ StructSerializer = &StructEmitter{}

func newStructEmitter(e *Emitter) *StructEmitter {
	return &StructEmitter{emitter: e, empty: true}
}

func (s *StructEmitter) Field(name string, v Serializable) error {
	return writeField(s.emitter, &s.empty, name, v)
}

func (s *StructEmitter) End() error {
	if s.empty {
		return s.emitter.writeString("{}")
	}
	return nil
}

// StructVariantEmitter writes the fields of a struct variant one level below
// its "variant:" line.
type StructVariantEmitter struct {
	emitter *Emitter
	empty   bool
}

var _ StructSerializer = &StructVariantEmitter{}

func newStructVariantEmitter(e *Emitter) *StructVariantEmitter {
	return &StructVariantEmitter{emitter: e, empty: true}
}

func (s *StructVariantEmitter) Field(name string, v Serializable) error {
	return writeField(s.emitter, &s.empty, name, v)
}

// End also leaves the level entered when the variant name was written.
func (s *StructVariantEmitter) End() error {
	if s.empty {
		if err := s.emitter.writeString("{}"); err != nil {
			return err
		}
	}
	s.emitter.leave()
	return nil
}

func writeField(e *Emitter, empty *bool, name string, v Serializable) error {
	if !*empty {
		if err := e.writeByte('\n'); err != nil {
			return err
		}
	}
	*empty = false

	if err := e.indent(kindMappingKeyWritten); err != nil {
		return err
	}
	if err := e.writeString(name); err != nil {
		return err
	}
	if err := e.writeByte(':'); err != nil {
		return err
	}

	e.enter()
	if err := v.SerializeYAML(e); err != nil {
		return err
	}
	e.leave()
	return nil
}

func (e *Emitter) SerializeStruct(_ string, _ int) (StructSerializer, error) {
	return newStructEmitter(e), nil
}

func (e *Emitter) SerializeStructVariant(_ string, _ uint32, variant string, _ int) (StructSerializer, error) {
	if err := e.indent(kindMappingKeyWritten); err != nil {
		return nil, err
	}
	if err := e.writeString(variant); err != nil {
		return nil, err
	}
	if err := e.writeByte(':'); err != nil {
		return nil, err
	}
	e.enter()
	return newStructVariantEmitter(e), nil
}

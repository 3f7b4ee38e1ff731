// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

import (
	"strconv"
	"unicode/utf8"
)

func (e *Emitter) SerializeBool(v bool) error {
	if err := e.indent(kindLiteralValue); err != nil {
		return err
	}
	if v {
		return e.writeString("true")
	}
	return e.writeString("false")
}

func (e *Emitter) SerializeInt(v int64) error {
	if err := e.indent(kindLiteralValue); err != nil {
		return err
	}
	_, err := e.writer.Write(strconv.AppendInt(e.scratch[:0], v, 10))
	return err
}

func (e *Emitter) SerializeUint(v uint64) error {
	if err := e.indent(kindLiteralValue); err != nil {
		return err
	}
	_, err := e.writer.Write(strconv.AppendUint(e.scratch[:0], v, 10))
	return err
}

func (e *Emitter) SerializeFloat32(v float32) error {
	if err := e.indent(kindLiteralValue); err != nil {
		return err
	}
	_, err := e.writer.Write(appendFloat(e.scratch[:0], float64(v), 32))
	return err
}

func (e *Emitter) SerializeFloat64(v float64) error {
	if err := e.indent(kindLiteralValue); err != nil {
		return err
	}
	_, err := e.writer.Write(appendFloat(e.scratch[:0], v, 64))
	return err
}

func (e *Emitter) SerializeChar(v rune) error {
	if err := e.indent(kindLiteralValue); err != nil {
		return err
	}
	_, err := e.writer.Write(utf8.AppendRune(e.scratch[:0], v))
	return err
}

func (e *Emitter) SerializeString(v string) error {
	if err := e.indent(kindLiteralValue); err != nil {
		return err
	}
	if !NeedsQuotes(v) {
		return e.writeString(v)
	}
	if err := e.writeByte('\''); err != nil {
		return err
	}
	if err := e.writeString(v); err != nil {
		return err
	}
	return e.writeByte('\'')
}

// SerializeBytes writes v verbatim, without quoting. v must be valid UTF-8;
// otherwise an *InvalidUTF8Error is returned and nothing is written.
func (e *Emitter) SerializeBytes(v []byte) error {
	if !utf8.Valid(v) {
		return &InvalidUTF8Error{Offset: invalidUTF8Offset(v)}
	}
	if err := e.indent(kindLiteralValue); err != nil {
		return err
	}
	_, err := e.writer.Write(v)
	return err
}

func (e *Emitter) SerializeNone() error {
	if err := e.indent(kindLiteralValue); err != nil {
		return err
	}
	return e.writeString("null")
}

// SerializeSome writes the wrapped value with no marker of its own.
func (e *Emitter) SerializeSome(v Serializable) error {
	return v.SerializeYAML(e)
}

func (e *Emitter) SerializeUnit() error {
	return e.SerializeNone()
}

func (e *Emitter) SerializeUnitStruct(_ string) error {
	return e.SerializeUnit()
}

func (e *Emitter) SerializeUnitVariant(_ string, _ uint32, variant string) error {
	return e.SerializeString(variant)
}

func (e *Emitter) SerializeNewtypeStruct(_ string, v Serializable) error {
	return v.SerializeYAML(e)
}

// SerializeNewtypeVariant writes a single "variant: value" entry.
func (e *Emitter) SerializeNewtypeVariant(_ string, _ uint32, variant string, v Serializable) error {
	s := newStructEmitter(e)
	if err := s.Field(variant, v); err != nil {
		return err
	}
	return s.End()
}

func invalidUTF8Offset(v []byte) int {
	for i := 0; i < len(v); {
		r, size := utf8.DecodeRune(v[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(v)
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

import (
	"fmt"
	"io"
)

// tokenKind classifies the most recently emitted token.
type tokenKind int

const (
	kindNone tokenKind = iota
	kindSequenceMarker
	kindPreMappingKey
	kindMappingKeyWritten
	kindLiteralValue
)

func (k tokenKind) String() string {
	switch k {
	case kindNone:
		return "none"
	case kindSequenceMarker:
		return "sequence-marker"
	case kindPreMappingKey:
		return "pre-mapping-key"
	case kindMappingKeyWritten:
		return "mapping-key-written"
	case kindLiteralValue:
		return "literal-value"
	default:
		return fmt.Sprintf("tokenKind(%d)", int(k))
	}
}

const indentLvl = "  "

// spaces backs indentation writes; deeper levels are written in chunks.
const spaces = "                                                                "

var _ Serializer = &Emitter{}

// Emitter is the layout state machine. It is created per Emit call and must
// not be shared.
type Emitter struct {
	writer    io.Writer
	depth     int
	preceding tokenKind
	scratch   [32]byte
}

func newEmitter(writer io.Writer) *Emitter {
	return &Emitter{writer: writer, preceding: kindNone}
}

func (e *Emitter) writeByte(c byte) error {
	e.scratch[0] = c
	_, err := e.writer.Write(e.scratch[:1])
	return err
}

func (e *Emitter) writeString(s string) error {
	_, err := io.WriteString(e.writer, s)
	return err
}

func (e *Emitter) writeIndent() error {
	n := e.depth * len(indentLvl)
	for n > 0 {
		chunk := n
		if chunk > len(spaces) {
			chunk = len(spaces)
		}
		if err := e.writeString(spaces[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// indent is called right before any visible token and writes whatever
// separator belongs between the previous token and next.
func (e *Emitter) indent(next tokenKind) error {
	var err error

	switch {
	case e.preceding == kindSequenceMarker,
		e.preceding == kindMappingKeyWritten && next == kindLiteralValue:
		err = e.writeByte(' ')

	case e.preceding == kindPreMappingKey && next == kindLiteralValue:
		next = kindMappingKeyWritten

	case e.preceding == kindLiteralValue && next == kindMappingKeyWritten:
		// key already written

	case e.preceding == kindNone:
		err = e.writeIndent()

	default:
		err = e.writeByte('\n')
		if err == nil {
			err = e.writeIndent()
		}
	}
	if err != nil {
		return err
	}

	e.preceding = next
	return nil
}

func (e *Emitter) enter() {
	e.depth++
}

func (e *Emitter) leave() {
	if e.depth == 0 {
		panic("yamlemit: leave called at depth 0")
	}
	e.depth--
	e.preceding = kindNone
}

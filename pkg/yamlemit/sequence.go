// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

// SeqEmitter writes one "- element" per line.
type SeqEmitter struct {
	emitter *Emitter
	empty   bool
}

var _ SeqSerializer = &SeqEmitter{}

func newSeqEmitter(e *Emitter) *SeqEmitter {
	return &SeqEmitter{emitter: e, empty: true}
}

func (s *SeqEmitter) Element(v Serializable) error {
	if !s.empty {
		if err := s.emitter.writeByte('\n'); err != nil {
			return err
		}
	}
	s.empty = false

	if err := s.emitter.indent(kindSequenceMarker); err != nil {
		return err
	}
	if err := s.emitter.writeByte('-'); err != nil {
		return err
	}

	s.emitter.enter()
	if err := v.SerializeYAML(s.emitter); err != nil {
		return err
	}
	s.emitter.leave()
	return nil
}

func (s *SeqEmitter) End() error {
	if s.empty {
		return s.emitter.writeString("[]")
	}
	return nil
}

func (e *Emitter) SerializeSeq(_ int) (SeqSerializer, error) {
	return newSeqEmitter(e), nil
}

func (e *Emitter) SerializeTuple(length int) (SeqSerializer, error) {
	return e.SerializeSeq(length)
}

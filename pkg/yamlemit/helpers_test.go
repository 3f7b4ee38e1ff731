// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit_test

import (
	"carvel.dev/yamlemit/pkg/yamlemit"
)

type fn = yamlemit.SerializableFunc

func boolean(v bool) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeBool(v) })
}

func integer(v int64) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeInt(v) })
}

func unsigned(v uint64) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeUint(v) })
}

func float32Val(v float32) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeFloat32(v) })
}

func float64Val(v float64) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeFloat64(v) })
}

func str(v string) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeString(v) })
}

func raw(v []byte) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeBytes(v) })
}

func char(v rune) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeChar(v) })
}

func none() yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeNone() })
}

func some(v yamlemit.Serializable) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeSome(v) })
}

func unit() yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeUnit() })
}

func unitVariant(variant string) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeUnitVariant("Type", 0, variant) })
}

func newtypeStruct(v yamlemit.Serializable) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeNewtypeStruct("A", v) })
}

func newtypeVariant(variant string, v yamlemit.Serializable) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error { return s.SerializeNewtypeVariant("A", 0, variant, v) })
}

func seq(items ...yamlemit.Serializable) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error {
		seq, err := s.SerializeSeq(len(items))
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := seq.Element(item); err != nil {
				return err
			}
		}
		return seq.End()
	})
}

type kv struct {
	Key   yamlemit.Serializable
	Value yamlemit.Serializable
}

func mapping(entries ...kv) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error {
		m, err := s.SerializeMap(len(entries))
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := m.Entry(entry.Key, entry.Value); err != nil {
				return err
			}
		}
		return m.End()
	})
}

type field struct {
	Name  string
	Value yamlemit.Serializable
}

func structOf(fields ...field) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error {
		st, err := s.SerializeStruct("S", len(fields))
		if err != nil {
			return err
		}
		for _, f := range fields {
			if err := st.Field(f.Name, f.Value); err != nil {
				return err
			}
		}
		return st.End()
	})
}

func structVariant(variant string, fields ...field) yamlemit.Serializable {
	return fn(func(s yamlemit.Serializer) error {
		st, err := s.SerializeStructVariant("A", 0, variant, len(fields))
		if err != nil {
			return err
		}
		for _, f := range fields {
			if err := st.Field(f.Name, f.Value); err != nil {
				return err
			}
		}
		return st.End()
	})
}

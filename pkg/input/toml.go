// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"carvel.dev/yamlemit/pkg/orderedmap"
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DecodeTOML decodes a TOML document. Tables become *orderedmap.Map with
// sorted keys.
func DecodeTOML(data []byte) (interface{}, error) {
	var val map[string]interface{}
	if _, err := toml.Decode(string(data), &val); err != nil {
		return nil, errors.Wrap(err, "Unmarshaling TOML")
	}
	return orderedmap.FromNative(val), nil
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"carvel.dev/yamlemit/pkg/orderedmap"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// DecodeJSON decodes one JSON value. Objects become *orderedmap.Map in key
// order; numbers become int64, uint64 or float64.
func DecodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := jsonValue(dec)
	if err != nil {
		return nil, errors.Wrap(err, "Unmarshaling JSON")
	}

	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("Expected a single JSON value, but found trailing data")
		}
		return nil, errors.Wrap(err, "Unmarshaling JSON")
	}
	return val, nil
}

func jsonValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch typedTok := tok.(type) {
	case json.Delim:
		switch typedTok {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		default:
			return nil, fmt.Errorf("Unexpected delimiter '%c'", rune(typedTok))
		}

	case json.Number:
		return jsonNumber(typedTok)

	default:
		// string, bool, nil
		return typedTok, nil
	}
}

func jsonObject(dec *json.Decoder) (interface{}, error) {
	result := orderedmap.NewMap()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("Expected object key to be a string, but was %T", keyTok)
		}

		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		result.Set(key, val)
	}
	if _, err := dec.Token(); err != nil { // '}'
		return nil, err
	}
	return result, nil
}

func jsonArray(dec *json.Decoder) (interface{}, error) {
	result := []interface{}{}
	for dec.More() {
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	if _, err := dec.Token(); err != nil { // ']'
		return nil, err
	}
	return result, nil
}

func jsonNumber(num json.Number) (interface{}, error) {
	text := num.String()
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return u, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("Expected '%s' to be a number: %s", text, err)
	}
	return f, nil
}

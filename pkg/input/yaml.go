// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"bytes"
	"fmt"
	"io"

	"carvel.dev/yamlemit/pkg/orderedmap"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes exactly one YAML document. Mappings become
// *orderedmap.Map in document order; aliases are resolved.
func DecodeYAML(data []byte) (interface{}, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "Unmarshaling YAML")
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		if err != nil {
			return nil, errors.Wrap(err, "Unmarshaling YAML")
		}
		return nil, fmt.Errorf("Expected to find exactly one YAML document")
	}

	val, err := yamlNodeValue(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "Converting YAML")
	}
	return val, nil
}

func yamlNodeValue(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlNodeValue(node.Content[0])

	case yaml.MappingNode:
		result := orderedmap.NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := yamlNodeValue(node.Content[i])
			if err != nil {
				return nil, err
			}
			val, err := yamlNodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			result.Set(key, val)
		}
		return result, nil

	case yaml.SequenceNode:
		result := []interface{}{}
		for _, item := range node.Content {
			val, err := yamlNodeValue(item)
			if err != nil {
				return nil, err
			}
			result = append(result, val)
		}
		return result, nil

	case yaml.AliasNode:
		return yamlNodeValue(node.Alias)

	case yaml.ScalarNode:
		var val interface{}
		if err := node.Decode(&val); err != nil {
			return nil, fmt.Errorf("line %d: %s", node.Line, err)
		}
		return val, nil

	default:
		return nil, fmt.Errorf("line %d: unknown YAML node kind %d", node.Line, node.Kind)
	}
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	if strings.EqualFold(name, "yml") {
		return FormatYAML, nil
	}
	return "", fmt.Errorf("Unknown input format '%s' (supported: %s)", name, formatNames())
}

// FormatFromPath infers a format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yml", ".yaml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// Decode parses data as a single document of the given format.
func Decode(format Format, data []byte) (interface{}, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	case FormatTOML:
		return DecodeTOML(data)
	default:
		return nil, fmt.Errorf("Unknown input format '%s' (supported: %s)", format, formatNames())
	}
}

func formatNames() string {
	var names []string
	for _, f := range Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

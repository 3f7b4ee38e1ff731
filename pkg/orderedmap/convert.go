// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"fmt"
	"sort"
)

// FromNative converts native Go maps at any depth into *Map. Native maps have
// no order of their own, so keys are sorted by their text. Slices are copied;
// val itself is left untouched.
func FromNative(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case map[string]interface{}:
		keys := make([]interface{}, 0, len(typedVal))
		for k := range typedVal {
			keys = append(keys, k)
		}
		return sortedMap(keys, func(k interface{}) interface{} { return typedVal[k.(string)] })

	case map[interface{}]interface{}:
		keys := make([]interface{}, 0, len(typedVal))
		for k := range typedVal {
			keys = append(keys, k)
		}
		return sortedMap(keys, func(k interface{}) interface{} { return typedVal[k] })

	case []interface{}:
		result := make([]interface{}, len(typedVal))
		for i, item := range typedVal {
			result[i] = FromNative(item)
		}
		return result

	// arrays of tables
	case []map[string]interface{}:
		result := make([]interface{}, len(typedVal))
		for i, item := range typedVal {
			result[i] = FromNative(item)
		}
		return result

	default:
		return val
	}
}

func sortedMap(keys []interface{}, lookup func(interface{}) interface{}) *Map {
	sort.SliceStable(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})

	result := &Map{}
	for _, k := range keys {
		result.Set(k, FromNative(lookup(k)))
	}
	return result
}

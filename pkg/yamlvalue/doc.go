// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlvalue adapts ordinary Go values to yamlemit.Serializable using
reflection.

	out, err := yamlvalue.MarshalString(struct {
		Name  string `yaml:"name"`
		Ports []int  `yaml:"ports"`
	}{"web", []int{80, 443}})

Struct fields use the `yaml` tag for their name ("-" skips a field,
"omitempty" skips zero values). Go maps are written with keys ordered by
their text; types that implement yamlemit.Serializable (such as
*orderedmap.Map) control their own order. Enum-like values are
built with UnitVariant, NewtypeVariant and StructVariant.
*/
package yamlvalue

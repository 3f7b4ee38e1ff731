// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package input decodes JSON, YAML and TOML documents into plain Go values
(*orderedmap.Map, []interface{}, scalars) ready to be emitted.

Mapping keys keep their document order for JSON and YAML. TOML tables are
decoded into native maps first, so their keys are sorted.
*/
package input

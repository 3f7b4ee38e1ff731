// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package starlarkvalue evaluates Starlark expressions and emits the resulting
values.

Dicts keep their insertion order and structs (built with the predeclared
`struct(...)` builtin) become mappings of their attributes.
*/
package starlarkvalue

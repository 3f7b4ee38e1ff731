// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package starlarkvalue

import (
	"github.com/k14s/starlark-go/resolve"
	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/starlarkstruct"
	"github.com/k14s/starlark-go/syntax"
	"github.com/pkg/errors"
)

func init() {
	resolve.AllowFloat = true
	resolve.AllowSet = true
	resolve.AllowLambda = true
	resolve.AllowBitwise = true
}

// Predeclared is the environment expressions are evaluated in.
var Predeclared = starlark.StringDict{
	"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
}

// Eval evaluates a single expression; name is used in error positions.
func Eval(name, src string) (starlark.Value, error) {
	// Standard scanner: block scanning reports syntax errors by panicking
	expr, err := syntax.ParseExpr(name, src, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "Parsing expression '%s'", name)
	}

	thread := &starlark.Thread{Name: "yamlemit-eval"}

	val, err := starlark.EvalExpr(thread, expr, Predeclared)
	if err != nil {
		return nil, errors.Wrapf(err, "Evaluating expression '%s'", name)
	}
	return val, nil
}

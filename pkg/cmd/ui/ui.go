// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

// UI separates emitted documents (Printf) from diagnostics (Warnf, Debugf).
type UI interface {
	Printf(str string, args ...interface{})
	Warnf(str string, args ...interface{})
	Debugf(str string, args ...interface{})
}

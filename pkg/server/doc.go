// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package server exposes the emitter over HTTP: POST a JSON, YAML or TOML
document to /emit and receive its YAML-style text.
*/
package server

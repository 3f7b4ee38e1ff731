// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of yamlemit.

Packages are layered so that each one depends on the others only as far as it
must. In the inventory below, individual packages are named alongside their
coupling with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

yamlemit is built into two executable formats:

	./cmd/yamlemit          // a command-line tool
	./cmd/yamlemit-lambda   // an AWS Lambda function behind an ALB

# Commands

	(2) => pkg/cmd => (6)
	(1) => pkg/server => (2)

# The Emitter

The heart of yamlemit is a small layout state machine that writes values,
described through the Serializer interface, as indented YAML-style text.

	(5) => pkg/yamlemit => (0)

# Value Adapters

Adapters describe common Go and Starlark values to the emitter.

	(2) => pkg/yamlvalue => (1)
	(1) => pkg/starlarkvalue => (1)

# Input

Documents are decoded from JSON, YAML or TOML into ordered values.

	(2) => pkg/input => (1)
	(1) => pkg/orderedmap => (2)

# Utilities

	(1) => pkg/cmd/ui => (0)
	(1) => pkg/version => (0)

# Dependencies

	pkg/cmd:
	- pkg/cmd/ui
	- pkg/input
	- pkg/server
	- pkg/starlarkvalue
	- pkg/version
	- pkg/yamlemit
	- pkg/yamlvalue
	pkg/server:
	- pkg/input
	- pkg/yamlvalue
	pkg/yamlvalue:
	- pkg/yamlemit
	pkg/starlarkvalue:
	- pkg/yamlemit
	pkg/input:
	- pkg/orderedmap
	pkg/orderedmap:
	- pkg/yamlemit
	- pkg/yamlvalue
*/
package pkg

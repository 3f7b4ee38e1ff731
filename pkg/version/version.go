// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version, set via
// -ldflags "-X carvel.dev/yamlemit/pkg/version.Version=<version>".
package version

var Version = "develop"

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlemit/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type YamlemitOptions struct{}

func NewDefaultYamlemitOptions() *YamlemitOptions {
	return &YamlemitOptions{}
}

func NewDefaultYamlemitCmd() *cobra.Command {
	return NewYamlemitCmd(NewDefaultYamlemitOptions())
}

func NewYamlemitCmd(_ *YamlemitOptions) *cobra.Command {
	cmd := NewEmitCmd(NewEmitOptions())

	cmd.Use = "yamlemit"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "yamlemit writes documents as compact YAML-style text"
	cmd.Long = `yamlemit writes JSON, YAML, TOML documents and Starlark expressions as compact,
indented YAML-style text.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewEmitCmd(NewEmitOptions()))
	cmd.AddCommand(NewServeCmd(NewServeOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

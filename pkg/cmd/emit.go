// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"carvel.dev/yamlemit/pkg/cmd/ui"
	"carvel.dev/yamlemit/pkg/input"
	"carvel.dev/yamlemit/pkg/starlarkvalue"
	"carvel.dev/yamlemit/pkg/yamlemit"
	"carvel.dev/yamlemit/pkg/yamlvalue"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const stdinPath = "-"

type EmitOptions struct {
	Files       []string
	Exprs       []string
	InputFormat string
	Debug       bool
}

func NewEmitOptions() *EmitOptions {
	return &EmitOptions{}
}

func NewEmitCmd(o *EmitOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "emit",
		Aliases: []string{"e"},
		Short:   "Emit documents as YAML-style text",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File (ie local path, -) (can be specified multiple times)")
	cmd.Flags().StringArrayVarP(&o.Exprs, "expr", "e", nil, "Starlark expression to evaluate and emit (can be specified multiple times)")
	cmd.Flags().StringVar(&o.InputFormat, "input-format", "", "Input format (json, yaml, toml); inferred from file extension by default")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *EmitOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug), os.Stdin)
}

// RunWithUI prints every input's text followed by a newline. Files are
// emitted before expressions.
func (o *EmitOptions) RunWithUI(ui ui.UI, stdin io.Reader) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	if len(o.Files) == 0 && len(o.Exprs) == 0 {
		return fmt.Errorf("Expected at least one file (--file) or expression (--expr)")
	}

	var forcedFormat input.Format
	if o.InputFormat != "" {
		var err error
		forcedFormat, err = input.ParseFormat(o.InputFormat)
		if err != nil {
			return err
		}
	}

	for _, path := range o.Files {
		format, err := o.formatFor(path, forcedFormat)
		if err != nil {
			return err
		}

		data, err := o.readFile(path, stdin)
		if err != nil {
			return err
		}

		ui.Debugf("emitting %s as %s (%d bytes)\n", path, format, len(data))

		if len(bytes.TrimSpace(data)) == 0 {
			ui.Warnf("file '%s' is empty\n", path)
		}

		val, err := input.Decode(format, data)
		if err != nil {
			return errors.Wrapf(err, "Decoding file '%s'", path)
		}

		out, err := yamlvalue.MarshalString(val)
		if err != nil {
			return errors.Wrapf(err, "Emitting file '%s'", path)
		}
		ui.Printf("%s\n", out)
	}

	for i, src := range o.Exprs {
		name := fmt.Sprintf("expr%d", i+1)
		ui.Debugf("evaluating %s\n", name)

		val, err := starlarkvalue.Eval(name, src)
		if err != nil {
			return err
		}

		out, err := yamlemit.EmitString(starlarkvalue.Of(val))
		if err != nil {
			return errors.Wrapf(err, "Emitting expression '%s'", name)
		}
		ui.Printf("%s\n", out)
	}

	return nil
}

func (o *EmitOptions) formatFor(path string, forced input.Format) (input.Format, error) {
	if forced != "" {
		return forced, nil
	}
	if path == stdinPath {
		return input.FormatYAML, nil
	}
	format, ok := input.FormatFromPath(path)
	if !ok {
		return "", fmt.Errorf("Unable to infer input format of file '%s' (use --input-format)", path)
	}
	return format, nil
}

func (o *EmitOptions) readFile(path string, stdin io.Reader) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "Reading stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Reading file '%s'", path)
	}
	return data, nil
}

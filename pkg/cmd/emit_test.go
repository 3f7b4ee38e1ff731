// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cmdpkg "carvel.dev/yamlemit/pkg/cmd"
	"carvel.dev/yamlemit/pkg/cmd/ui"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// Example usage:
	//   go test ./pkg/cmd -run TestEmitFiletests -args TestEmitFiletests.filetest=nested.yaml
	selectedFileTestPath = kvArg("TestEmitFiletests.filetest")
)

func TestEmitFiletests(t *testing.T) {
	files, err := os.ReadDir("filetests")
	require.NoError(t, err)

	if len(selectedFileTestPath) > 0 {
		fmt.Printf("only running %s test(s)\n", selectedFileTestPath)
	}

	const (
		testSep   = "\n+++\n\n"
		errPrefix = "ERR: "
	)

	for _, file := range files {
		if len(selectedFileTestPath) > 0 && !strings.HasPrefix(file.Name(), selectedFileTestPath) {
			continue
		}

		filePath := filepath.Join("filetests", file.Name())

		t.Run(file.Name(), func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			require.NoError(t, err)

			pieces := strings.SplitN(string(contents), testSep, 2)
			require.Len(t, pieces, 2, "expected file %s to include +++ separator", filePath)

			opts := cmdpkg.NewEmitOptions()
			opts.Files = []string{"-"}
			opts.InputFormat = strings.TrimPrefix(filepath.Ext(file.Name()), ".")

			stdout := &bytes.Buffer{}
			runErr := opts.RunWithUI(ui.NewCustomWriterTTY(false, stdout, &bytes.Buffer{}), strings.NewReader(pieces[0]))

			expectedStr := pieces[1]
			if strings.HasPrefix(expectedStr, errPrefix) {
				require.Error(t, runErr)
				assert.Equal(t, strings.TrimSpace(strings.TrimPrefix(expectedStr, errPrefix)), runErr.Error())
				return
			}

			require.NoError(t, runErr)
			if err := expectEquals(stdout.String(), expectedStr); err != nil {
				t.Fatal(err)
			}
		})
	}

	if len(selectedFileTestPath) > 0 {
		t.Errorf("skipped tests")
	}
}

func TestEmitFiles(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "a.json")
	tomlPath := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"a": [1, {"b": "x"}]}`), 0600))
	require.NoError(t, os.WriteFile(tomlPath, []byte("k = 'v'\n"), 0600))

	t.Run("formats are inferred from extensions", func(t *testing.T) {
		opts := cmdpkg.NewEmitOptions()
		opts.Files = []string{jsonPath, tomlPath}

		stdout := &bytes.Buffer{}
		err := opts.RunWithUI(ui.NewCustomWriterTTY(false, stdout, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, "a:\n  - 1\n  - b: x\nk: v\n", stdout.String())
	})

	t.Run("files are emitted before expressions", func(t *testing.T) {
		opts := cmdpkg.NewEmitOptions()
		opts.Files = []string{tomlPath}
		opts.Exprs = []string{`{"x": [1, 2]}`, `struct(name="a", port=80)`}

		stdout := &bytes.Buffer{}
		err := opts.RunWithUI(ui.NewCustomWriterTTY(false, stdout, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, "k: v\nx:\n  - 1\n  - 2\nname: a\nport: 80\n", stdout.String())
	})

	t.Run("unknown extension", func(t *testing.T) {
		txtPath := filepath.Join(dir, "c.txt")
		require.NoError(t, os.WriteFile(txtPath, []byte("a: 1"), 0600))

		opts := cmdpkg.NewEmitOptions()
		opts.Files = []string{txtPath}

		err := opts.RunWithUI(ui.NewCustomWriterTTY(false, &bytes.Buffer{}, nil), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unable to infer input format of file")

		opts.InputFormat = "yml"
		stdout := &bytes.Buffer{}
		err = opts.RunWithUI(ui.NewCustomWriterTTY(false, stdout, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, "a: 1\n", stdout.String())
	})

	t.Run("missing file", func(t *testing.T) {
		opts := cmdpkg.NewEmitOptions()
		opts.Files = []string{filepath.Join(dir, "missing.json")}

		err := opts.RunWithUI(ui.NewCustomWriterTTY(false, &bytes.Buffer{}, nil), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Reading file '")
	})
}

func TestEmitWarnsAndDebugs(t *testing.T) {
	opts := cmdpkg.NewEmitOptions()
	opts.Files = []string{"-"}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := opts.RunWithUI(ui.NewCustomWriterTTY(true, stdout, stderr), strings.NewReader("\n"))
	require.NoError(t, err)

	assert.Equal(t, "null\n", stdout.String())
	assert.Contains(t, stderr.String(), "Warning: file '-' is empty\n")
	assert.Contains(t, stderr.String(), "emitting - as yaml (1 bytes)\n")
	assert.Contains(t, stderr.String(), "total: ")
}

func TestEmitErrors(t *testing.T) {
	t.Run("nothing to emit", func(t *testing.T) {
		err := cmdpkg.NewEmitOptions().RunWithUI(ui.NewCustomWriterTTY(false, &bytes.Buffer{}, nil), nil)
		require.EqualError(t, err, "Expected at least one file (--file) or expression (--expr)")
	})

	t.Run("unknown format", func(t *testing.T) {
		opts := cmdpkg.NewEmitOptions()
		opts.Files = []string{"-"}
		opts.InputFormat = "xml"

		err := opts.RunWithUI(ui.NewCustomWriterTTY(false, &bytes.Buffer{}, nil), strings.NewReader(""))
		require.EqualError(t, err, "Unknown input format 'xml' (supported: json, yaml, toml)")
	})

	t.Run("invalid expression does not crash", func(t *testing.T) {
		opts := cmdpkg.NewEmitOptions()
		opts.Exprs = []string{"1 +"}

		stdout := &bytes.Buffer{}
		err := opts.RunWithUI(ui.NewCustomWriterTTY(false, stdout, nil), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Parsing expression 'expr1'")
		assert.Empty(t, stdout.String())
	})
}

func TestEmitExpressions(t *testing.T) {
	opts := cmdpkg.NewEmitOptions()
	opts.Exprs = []string{"-1.5", "set([3, 1, 3])", `{"ratio": 0.5 / 2}`}

	stdout := &bytes.Buffer{}
	err := opts.RunWithUI(ui.NewCustomWriterTTY(false, stdout, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, "-1.5\n- 3\n- 1\nratio: 0.25\n", stdout.String())
}

func TestYamlemitCmd(t *testing.T) {
	cmd := cmdpkg.NewDefaultYamlemitCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"emit", "serve", "version"})

	for _, name := range []string{"file", "expr", "input-format", "debug"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestServeOptionsListenAddrEnv(t *testing.T) {
	assert.Equal(t, "localhost:8080", cmdpkg.NewServeOptions().ListenAddr)

	t.Setenv(cmdpkg.ListenAddrEnv, "0.0.0.0:9090")
	assert.Equal(t, "0.0.0.0:9090", cmdpkg.NewServeOptions().ListenAddr)
}

func expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		diff := difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n"))
		return fmt.Errorf("Not equal; diff expected...actual:\n%v", diff)
	}
	return nil
}

func kvArg(name string) string {
	name += "="
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, name) {
			return strings.TrimPrefix(arg, name)
		}
	}
	return ""
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package server_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"carvel.dev/yamlemit/pkg/server"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(logs *bytes.Buffer) *server.Server {
	return server.NewServer(server.ServerOpts{
		MaxBodyBytes: 64,
		Logger:       log.NewLogfmtLogger(logs),
	})
}

func TestEmit(t *testing.T) {
	logs := &bytes.Buffer{}
	mux := newTestServer(logs).Mux()

	t.Run("json by default", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/emit", strings.NewReader(`{"b": [1, 2], "a": "x"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "b:\n  - 1\n  - 2\na: x\n", rec.Body.String())
		assert.Equal(t, "text/yaml; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("other formats", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/emit?format=toml", strings.NewReader("led = true")))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "led: true\n", rec.Body.String())
	})

	t.Run("decode errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/emit?format=yaml", strings.NewReader("a: [1")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "error: Unmarshaling YAML"), rec.Body.String())
		assert.Contains(t, logs.String(), "msg=\"request failed\"")
	})

	t.Run("unknown format", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/emit?format=xml", strings.NewReader("<a/>")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "error: Unknown input format 'xml' (supported: json, yaml, toml)\n", rec.Body.String())
	})

	t.Run("body too large", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"a": "` + strings.Repeat("x", 100) + `"}`
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/emit", strings.NewReader(body)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("interrupted body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := io.MultiReader(strings.NewReader(`{"a": `), iotest.ErrReader(errors.New("connection reset by peer")))
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/emit", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "error: Reading request body: connection reset by peer\n", rec.Body.String())
	})

	t.Run("only POST", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/emit", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	})
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&bytes.Buffer{}).Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

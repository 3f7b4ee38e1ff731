// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"carvel.dev/yamlemit/pkg/input"
	"carvel.dev/yamlemit/pkg/yamlvalue"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

const DefaultMaxBodyBytes = 1 << 20

type ServerOpts struct {
	ListenAddr   string
	MaxBodyBytes int64
	Logger       log.Logger
}

type Server struct {
	opts   ServerOpts
	logger log.Logger
}

func NewServer(opts ServerOpts) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(false)
	}
	return &Server{opts, log.With(logger, "component", "server")}
}

// NewLogger returns a logfmt logger writing to stderr; debug lines are
// filtered out unless debug is set.
func NewLogger(debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if debug {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	// no need for caching as it's a POST
	mux.HandleFunc("/emit", s.noCacheHandler(s.emitHandler))
	mux.HandleFunc("/health", s.healthHandler)
	return mux
}

func (s *Server) Run() error {
	server := &http.Server{
		Addr:              s.opts.ListenAddr,
		Handler:           s.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	level.Info(s.logger).Log("msg", "listening", "addr", "http://"+server.Addr)
	return server.ListenAndServe()
}

func (s *Server) emitHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.logError(w, http.StatusMethodNotAllowed, fmt.Errorf("Expected method POST, but was %s", r.Method))
		return
	}

	format := input.FormatJSON
	if name := r.URL.Query().Get("format"); name != "" {
		parsed, err := input.ParseFormat(name)
		if err != nil {
			s.logError(w, http.StatusBadRequest, err)
			return
		}
		format = parsed
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.logError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.logError(w, http.StatusBadRequest, errors.Wrap(err, "Reading request body"))
		return
	}

	val, err := input.Decode(format, data)
	if err != nil {
		s.logError(w, http.StatusBadRequest, err)
		return
	}

	// Emit into a buffer so a failure never leaves partial output behind
	var buf bytes.Buffer
	if err := yamlvalue.Fprint(&buf, val); err != nil {
		s.logError(w, http.StatusBadRequest, err)
		return
	}
	buf.WriteByte('\n')

	level.Debug(s.logger).Log("msg", "emitted", "format", format, "in_bytes", len(data), "out_bytes", buf.Len())

	w.Header().Set("Content-Type", "text/yaml; charset=utf-8")
	s.write(w, buf.Bytes())
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.write(w, []byte("ok"))
}

func (s *Server) logError(w http.ResponseWriter, status int, err error) {
	level.Error(s.logger).Log("msg", "request failed", "status", status, "err", err)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	s.write(w, []byte("error: "+err.Error()+"\n"))
}

func (s *Server) write(w http.ResponseWriter, data []byte) {
	w.Write(data) // not fmt.Fprintf!
}

func (s *Server) noCacheHandler(f func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		f(w, r)
	}
}

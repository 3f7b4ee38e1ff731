// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"carvel.dev/yamlemit/pkg/server"
	"github.com/spf13/cobra"
)

// ListenAddrEnv overrides the default --listen-addr.
const ListenAddrEnv = "YAMLEMIT_LISTEN_ADDR"

type ServeOptions struct {
	ListenAddr   string
	MaxBodyBytes int64
	Debug        bool
}

func NewServeOptions() *ServeOptions {
	listenAddr := "localhost:8080"
	if addr, ok := os.LookupEnv(ListenAddrEnv); ok && addr != "" {
		listenAddr = addr
	}
	return &ServeOptions{ListenAddr: listenAddr, MaxBodyBytes: server.DefaultMaxBodyBytes}
}

func NewServeCmd(o *ServeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts HTTP server emitting POSTed documents",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.ListenAddr, "listen-addr", o.ListenAddr, "Listen address")
	cmd.Flags().Int64Var(&o.MaxBodyBytes, "max-body-bytes", o.MaxBodyBytes, "Maximum accepted request body size")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ServeOptions) Server() *server.Server {
	opts := server.ServerOpts{
		ListenAddr:   o.ListenAddr,
		MaxBodyBytes: o.MaxBodyBytes,
		Logger:       server.NewLogger(o.Debug),
	}
	return server.NewServer(opts)
}

func (o *ServeOptions) Run() error {
	return o.Server().Run()
}

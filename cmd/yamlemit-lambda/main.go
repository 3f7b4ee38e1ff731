// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"net/http"

	"carvel.dev/yamlemit/pkg/cmd"
	"carvel.dev/yamlemit/pkg/server"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// HandlerFuncAdapter runs an http.Handler for ALB target group events.
type HandlerFuncAdapter struct {
	RequestAccessor
	handler http.Handler
	logger  log.Logger
}

func New(handler http.Handler, logger log.Logger) *HandlerFuncAdapter {
	return &HandlerFuncAdapter{
		RequestAccessor: RequestAccessor{logger: logger},
		handler:         handler,
		logger:          logger,
	}
}

func (h *HandlerFuncAdapter) Proxy(event events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error) {
	req, err := h.ProxyEventToHTTPRequest(event)
	if err != nil {
		return events.ALBTargetGroupResponse{StatusCode: http.StatusMisdirectedRequest}, fmt.Errorf("Could not convert event to request: %v", err)
	}

	w := NewProxyResponseWriter()
	h.handler.ServeHTTP(w, req)

	resp, err := w.ProxyResponse()
	if err != nil {
		return events.ALBTargetGroupResponse{StatusCode: http.StatusUnprocessableEntity}, fmt.Errorf("Error while generating response: %v", err)
	}

	level.Debug(h.logger).Log("msg", "proxied", "method", event.HTTPMethod, "path", event.Path, "status", resp.StatusCode)
	return resp, nil
}

func main() {
	serveOpts := cmd.NewServeOptions()
	logger := server.NewLogger(serveOpts.Debug)

	lambda.Start(New(serveOpts.Server().Mux(), log.With(logger, "component", "lambda")).Proxy)
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// ProxyResponseWriter buffers a handler's response so it can be returned
// as a single ALB target group response.
type ProxyResponseWriter struct {
	headers http.Header
	body    bytes.Buffer
	status  int
}

var _ http.ResponseWriter = &ProxyResponseWriter{}

func NewProxyResponseWriter() *ProxyResponseWriter {
	return &ProxyResponseWriter{headers: http.Header{}}
}

func (w *ProxyResponseWriter) Header() http.Header {
	return w.headers
}

func (w *ProxyResponseWriter) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(data)
}

func (w *ProxyResponseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

// ProxyResponse returns the buffered response. Bodies that are not valid
// UTF-8 are base64 encoded.
func (w *ProxyResponseWriter) ProxyResponse() (events.ALBTargetGroupResponse, error) {
	if w.status == 0 {
		return events.ALBTargetGroupResponse{}, fmt.Errorf("Expected status code to be set")
	}

	resp := events.ALBTargetGroupResponse{
		StatusCode:        w.status,
		StatusDescription: fmt.Sprintf("%d %s", w.status, http.StatusText(w.status)),
		MultiValueHeaders: map[string][]string(w.headers),
	}

	if utf8.Valid(w.body.Bytes()) {
		resp.Body = w.body.String()
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(w.body.Bytes())
		resp.IsBase64Encoded = true
	}
	return resp, nil
}

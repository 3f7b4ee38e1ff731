// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// CustomHostVariable names the environment variable holding the scheme and
// host prepended to request paths (e.g. http://my-custom.host.com).
const CustomHostVariable = "GO_API_HOST"

// DefaultServerAddress is prepended to request paths when CustomHostVariable is unset.
const DefaultServerAddress = "https://aws-serverless-go-api.com"

type RequestAccessor struct {
	stripBasePath string
	logger        log.Logger
}

func (r *RequestAccessor) ProxyEventToHTTPRequest(req events.ALBTargetGroupRequest) (*http.Request, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	path := req.Path
	if len(r.stripBasePath) > 1 {
		path = strings.TrimPrefix(path, r.stripBasePath)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	serverAddress := DefaultServerAddress
	if customAddress, ok := os.LookupEnv(CustomHostVariable); ok {
		serverAddress = customAddress
	}

	query := url.Values{}
	for k, vs := range req.MultiValueQueryStringParameters {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	for k, v := range req.QueryStringParameters {
		if _, found := query[k]; !found {
			query.Add(k, v)
		}
	}

	target := serverAddress + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	httpRequest, err := http.NewRequest(strings.ToUpper(req.HTTPMethod), target, bytes.NewReader(body))
	if err != nil {
		if r.logger != nil {
			level.Error(r.logger).Log("msg", "could not convert request", "method", req.HTTPMethod, "path", req.Path, "err", err)
		}
		return nil, err
	}

	for k, v := range req.Headers {
		httpRequest.Header.Add(k, v)
	}
	for k, vs := range req.MultiValueHeaders {
		for _, v := range vs {
			httpRequest.Header.Add(k, v)
		}
	}

	return httpRequest, nil
}

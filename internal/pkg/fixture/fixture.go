/*
 *  Licensed to the Apache Software Foundation (ASF) under one
 *  or more contributor license agreements.  See the NOTICE file
 *  distributed with this work for additional information
 *  regarding copyright ownership.  The ASF licenses this file
 *  to you under the Apache License, Version 2.0 (the
 *  "License"); you may not use this file except in compliance
 *  with the License.  You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing,
 *  software distributed under the License is distributed on an
 *   * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 *  KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations
 *  under the License.
 */

// Package fixture loads recorded HTTP responses for replaying queries
// without a live server.
//
// A fixture is a raw HTTP/1.x response as it appeared on the wire:
//
//	HTTP/1.1 200 OK
//	Content-Type: application/json; charset=utf-8
//
//	{"id": 1}
//
// It may live at any location vfs understands: file://, mem://, s3://,
// gs:// and so on.
package fixture

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"strings"

	_ "github.com/c2fo/vfs/v7/backend/mem"
	_ "github.com/c2fo/vfs/v7/backend/os"
	"github.com/c2fo/vfs/v7/vfssimple"

	"github.com/apache/hurl-go/internal/pkg/core/httpresp"
)

// Load reads and parses the fixture at uri. defaultCharset applies when
// the recorded Content-Type has no charset parameter.
func Load(uri, defaultCharset string) (*httpresp.Response, error) {
	f, err := vfssimple.NewFile(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture %s: %w", uri, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", uri, err)
	}
	resp, err := Parse(raw, defaultCharset)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", uri, err)
	}
	return resp, nil
}

// Parse reads a raw HTTP/1.x response. Headers keep the order and the
// spelling they have in raw.
func Parse(raw []byte, defaultCharset string) (*httpresp.Response, error) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(raw)), nil)
	if err != nil {
		return nil, fmt.Errorf("malformed HTTP response: %w", err)
	}
	parsed, err := httpresp.FromHTTP(resp, defaultCharset)
	if err != nil {
		return nil, err
	}
	headers, err := readHeaders(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed HTTP response: %w", err)
	}
	return httpresp.New(parsed.StatusCode, headers, parsed.Body, parsed.Charset), nil
}

// readHeaders returns the header lines following the status line, in
// wire order. Folded continuation lines are joined.
func readHeaders(raw []byte) ([]httpresp.Header, error) {
	tp := textproto.NewReader(bufio.NewReader(bytes.NewReader(raw)))
	if _, err := tp.ReadLine(); err != nil {
		return nil, err
	}
	var headers []httpresp.Header
	for {
		line, err := tp.ReadContinuedLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return headers, nil
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header line %q", line)
		}
		headers = append(headers, httpresp.Header{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
}

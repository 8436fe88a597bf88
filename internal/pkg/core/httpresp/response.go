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

// Package httpresp models a completed HTTP response as seen by queries.
package httpresp

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Header is a single response header line. Duplicate names are kept as
// separate entries in arrival order.
type Header struct {
	Name  string
	Value string
}

// Response is a fully read HTTP response. Fields must not be modified
// once Text has been called.
type Response struct {
	StatusCode int
	Headers    []Header
	Body       []byte
	Charset    string

	textLock sync.RWMutex
	decoded  bool
	text     string
	textErr  error
}

// New builds a response. An empty charset means DefaultCharset.
func New(statusCode int, headers []Header, body []byte, charset string) *Response {
	if charset == "" {
		charset = DefaultCharset
	}
	return &Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       body,
		Charset:    charset,
	}
}

// HeaderValues returns the values of every header whose name matches
// name case-insensitively, in order.
func (r *Response) HeaderValues(name string) []string {
	var values []string
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			values = append(values, h.Value)
		}
	}
	return values
}

// Text returns the body decoded with the response charset. The first
// call decodes; later calls return the same text or the same error.
func (r *Response) Text() (string, error) {
	r.textLock.RLock()
	if r.decoded {
		text, err := r.text, r.textErr
		r.textLock.RUnlock()
		return text, err
	}
	r.textLock.RUnlock()

	r.textLock.Lock()
	defer r.textLock.Unlock()
	if !r.decoded {
		r.text, r.textErr = Decode(r.Body, r.Charset)
		r.decoded = true
	}
	return r.text, r.textErr
}

// FromHTTP reads and closes resp.Body. The charset is taken from the
// Content-Type parameter, falling back to defaultCharset.
//
// net/http does not keep the relative order of differently named
// headers, so names are emitted sorted; values of one name keep their
// order.
func FromHTTP(resp *http.Response, defaultCharset string) (*Response, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	names := make([]string, 0, len(resp.Header))
	for name := range resp.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	var headers []Header
	for _, name := range names {
		for _, value := range resp.Header[name] {
			headers = append(headers, Header{Name: name, Value: value})
		}
	}

	charset := ContentTypeCharset(resp.Header.Get("Content-Type"))
	if charset == "" {
		charset = defaultCharset
	}
	return New(resp.StatusCode, headers, body, charset), nil
}

// ContentTypeCharset extracts the charset parameter of a Content-Type
// value, or "" when there is none.
func ContentTypeCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(params["charset"])
}

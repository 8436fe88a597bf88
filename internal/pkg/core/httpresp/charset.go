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

package httpresp

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// DefaultCharset is assumed when a response declares none.
const DefaultCharset = "utf-8"

var errMalformed = errors.New("malformed byte sequence")

// DecodeError reports a body that is not valid text under Charset.
type DecodeError struct {
	Charset string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("body can not be decoded with charset %s: %v", e.Charset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode converts body to text using the named charset. Decoding is
// strict: a single byte sequence that is invalid for the charset fails
// the whole call rather than being replaced.
func Decode(body []byte, charset string) (string, error) {
	name := strings.TrimSpace(charset)
	if name == "" {
		name = DefaultCharset
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", &DecodeError{Charset: name, Err: err}
	}
	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		if !utf8.Valid(body) {
			return "", &DecodeError{Charset: name, Err: errMalformed}
		}
		return string(body), nil
	}

	text, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", &DecodeError{Charset: name, Err: err}
	}
	if !bytes.ContainsRune(text, utf8.RuneError) {
		return string(text), nil
	}
	// Decoders substitute U+FFFD for bad input. Only charsets that can
	// encode U+FFFD themselves (utf-16, gb18030) may carry it legitimately,
	// and those round-trip exactly.
	if _, err := enc.NewEncoder().String(string(utf8.RuneError)); err != nil {
		return "", &DecodeError{Charset: name, Err: errMalformed}
	}
	back, err := enc.NewEncoder().Bytes(text)
	if err != nil || !bytes.Equal(back, body) {
		return "", &DecodeError{Charset: name, Err: errMalformed}
	}
	return string(text), nil
}

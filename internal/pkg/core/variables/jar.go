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

// Package variables holds the name to result bindings visible to a query.
package variables

import "github.com/apache/hurl-go/internal/pkg/core/result"

// Lookup resolves a variable name. Implementations must not change
// while an evaluation reads from them.
type Lookup interface {
	Get(name string) (result.Result, bool)
}

// Jar is a map-backed Lookup. Captured query results are stored back
// into a Jar so later queries can reference them.
type Jar map[string]result.Result

// NewJar returns an empty jar.
func NewJar() Jar {
	return make(Jar)
}

func (j Jar) Get(name string) (result.Result, bool) {
	r, ok := j[name]
	return r, ok
}

// Set binds name to r, replacing any previous binding.
func (j Jar) Set(name string, r result.Result) {
	j[name] = r
}

// SetString is shorthand for binding a string value.
func (j Jar) SetString(name, value string) {
	j[name] = result.String{Value: value}
}

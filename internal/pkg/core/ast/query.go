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

// Package ast holds the query nodes produced by the test file parser.
//
// Query is a closed set: every variant implements the unexported
// queryNode marker, so new kinds can only be added in this package and
// every type switch over Query must be revisited when one is.
package ast

import "fmt"

// Position is a 1-based line/column location in the source file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Expr is literal source text together with where it started.
type Expr struct {
	Value string
	Begin Position
}

// Query is one of StatusQuery, HeaderQuery, CookieQuery, BodyQuery,
// XPathQuery, JSONPathQuery, RegexQuery or VariableQuery.
//
//sumtype:decl
type Query interface {
	Kind() string
	queryNode()
}

type StatusQuery struct{}

type HeaderQuery struct {
	Name Expr
}

type CookieQuery struct {
	Name Expr
}

type BodyQuery struct{}

type XPathQuery struct {
	Expr Expr
}

type JSONPathQuery struct {
	Expr Expr
}

type RegexQuery struct {
	Expr Expr
}

type VariableQuery struct {
	Name Expr
}

func (StatusQuery) Kind() string   { return "status" }
func (HeaderQuery) Kind() string   { return "header" }
func (CookieQuery) Kind() string   { return "cookie" }
func (BodyQuery) Kind() string     { return "body" }
func (XPathQuery) Kind() string    { return "xpath" }
func (JSONPathQuery) Kind() string { return "jsonpath" }
func (RegexQuery) Kind() string    { return "regex" }
func (VariableQuery) Kind() string { return "variable" }

func (StatusQuery) queryNode()   {}
func (HeaderQuery) queryNode()   {}
func (CookieQuery) queryNode()   {}
func (BodyQuery) queryNode()     {}
func (XPathQuery) queryNode()    {}
func (JSONPathQuery) queryNode() {}
func (RegexQuery) queryNode()    {}
func (VariableQuery) queryNode() {}

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

package e2e

import (
	"github.com/apache/hurl-go/internal/pkg/core/ast"
	"github.com/apache/hurl-go/internal/pkg/core/result"
)

// JSONQueryTestSuite tests queries against a JSON API
type JSONQueryTestSuite struct {
	QueryE2ESuite
}

func (s *JSONQueryTestSuite) TestJSONPath() {
	resp := s.fetch("/api/users")

	s.Equal(result.String{Value: "alice"}, s.eval(ast.JSONPathQuery{Expr: expr("$.users[0].name")}, resp))
	s.Equal(result.Number{Value: 2}, s.eval(ast.JSONPathQuery{Expr: expr("$.total")}, resp))
	s.Equal(result.Bool{Value: false}, s.eval(ast.JSONPathQuery{Expr: expr("$.users[1].active")}, resp))
	s.Equal(result.List{Size: 2}, s.eval(ast.JSONPathQuery{Expr: expr("$.users")}, resp))
	s.Equal(result.List{Size: 1}, s.eval(ast.JSONPathQuery{Expr: expr("$.users[?(@.active == true)]")}, resp))
	s.Equal(result.Object{}, s.eval(ast.JSONPathQuery{Expr: expr("$.next")}, resp))
	s.Equal(result.None{}, s.eval(ast.JSONPathQuery{Expr: expr("$.users[5].name")}, resp))
	s.Equal(result.None{}, s.eval(ast.JSONPathQuery{Expr: expr("$.users[")}, resp))
}

func (s *JSONQueryTestSuite) TestJSONPathOnHTMLIsNone() {
	resp := s.fetch("/shop")
	s.Equal(result.None{}, s.eval(ast.JSONPathQuery{Expr: expr("$.title")}, resp))
}

func (s *JSONQueryTestSuite) TestCookies() {
	resp := s.fetch("/api/users")

	s.Equal(result.List{Size: 2}, s.eval(ast.HeaderQuery{Name: expr("set-cookie")}, resp))
	s.Equal(result.String{Value: "s3ss10n"}, s.eval(ast.CookieQuery{Name: expr("session")}, resp))
	s.Equal(result.String{Value: "en"}, s.eval(ast.CookieQuery{Name: expr("lang")}, resp))
	s.Equal(result.None{}, s.eval(ast.CookieQuery{Name: expr("theme")}, resp))
}

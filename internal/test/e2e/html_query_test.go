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
	"net/http"

	"github.com/apache/hurl-go/internal/pkg/core/ast"
	"github.com/apache/hurl-go/internal/pkg/core/result"
	"github.com/apache/hurl-go/internal/pkg/core/run"
)

// HTMLQueryTestSuite tests queries against an HTML page
type HTMLQueryTestSuite struct {
	QueryE2ESuite
}

func (s *HTMLQueryTestSuite) TestStatusAndHeaders() {
	resp := s.fetch("/shop")

	s.Equal(result.Number{Value: http.StatusOK}, s.eval(ast.StatusQuery{}, resp))
	s.Equal(result.String{Value: "text/html; charset=utf-8"}, s.eval(ast.HeaderQuery{Name: expr("content-type")}, resp))
	s.Equal(result.None{}, s.eval(ast.HeaderQuery{Name: expr("Location")}, resp))
}

func (s *HTMLQueryTestSuite) TestXPath() {
	resp := s.fetch("/shop")
	s.Vars.SetString("class", "product")

	s.Equal(result.NodeSet{Size: 3}, s.eval(ast.XPathQuery{Expr: expr("//li")}, resp))
	s.Equal(result.NodeSet{Size: 2}, s.eval(ast.XPathQuery{Expr: expr("//li[@class='{{class}}']")}, resp))
	s.Equal(result.String{Value: "Shop"}, s.eval(ast.XPathQuery{Expr: expr("string(//title)")}, resp))
	s.Equal(result.Number{Value: 3}, s.eval(ast.XPathQuery{Expr: expr("count(//li)")}, resp))
	s.Equal(result.Bool{Value: false}, s.eval(ast.XPathQuery{Expr: expr("boolean(//table)")}, resp))
}

func (s *HTMLQueryTestSuite) TestRegex() {
	resp := s.fetch("/shop")

	s.Equal(result.String{Value: "200"}, s.eval(ast.RegexQuery{Expr: expr(`status: (\d+)`)}, resp))
	s.Equal(result.None{}, s.eval(ast.RegexQuery{Expr: expr(`code: (\d+)`)}, resp))
}

func (s *HTMLQueryTestSuite) TestLegacyCharset() {
	resp := s.fetch("/legacy")

	s.Equal("iso-8859-1", resp.Charset)
	s.Equal(result.String{Value: "café crème"}, s.eval(ast.BodyQuery{}, resp))
	s.Equal(result.String{Value: "crème"}, s.eval(ast.RegexQuery{Expr: expr(`(cr\S+)`)}, resp))
}

func (s *HTMLQueryTestSuite) TestUndecodableBody() {
	resp := s.fetch("/broken")

	_, err := s.Evaluator.Eval(ast.BodyQuery{}, resp, s.Vars)
	s.Require().Error(err)
	s.ErrorIs(err, run.ErrInvalidQuery)
	s.Contains(err.Error(), "utf-8")

	// Queries that do not need the body still work.
	s.Equal(result.Number{Value: http.StatusOK}, s.eval(ast.StatusQuery{}, resp))
	s.Contains(s.LogBuffer.String(), "query failed")
}

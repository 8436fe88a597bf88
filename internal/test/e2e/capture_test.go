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
	"github.com/apache/hurl-go/internal/pkg/template"
)

// CaptureTestSuite tests chaining requests through captured values
type CaptureTestSuite struct {
	QueryE2ESuite
}

func (s *CaptureTestSuite) TestCaptureAndReuse() {
	list := s.fetch("/api/users")
	s.Vars.Set("token", s.eval(ast.JSONPathQuery{Expr: expr("$.token")}, list))
	s.Vars.Set("user_id", s.eval(ast.JSONPathQuery{Expr: expr("$.users[1].id")}, list))

	s.Equal(result.String{Value: "t0k3n"}, s.eval(ast.VariableQuery{Name: expr("token")}, list))

	path, err := template.Render("/api/users/{{user_id}}?token={{token}}", s.Vars, ast.Position{Line: 1, Column: 5})
	s.Require().NoError(err)
	s.Equal("/api/users/2?token=t0k3n", path)

	detail := s.fetch(path)
	s.Equal(result.Number{Value: http.StatusOK}, s.eval(ast.StatusQuery{}, detail))
	s.Equal(result.String{Value: "2"}, s.eval(ast.JSONPathQuery{Expr: expr("$.id")}, detail))
}

func (s *CaptureTestSuite) TestUnauthorizedWithoutCapture() {
	resp := s.fetch("/api/users/2")

	s.Equal(result.Number{Value: http.StatusUnauthorized}, s.eval(ast.StatusQuery{}, resp))
	s.Equal(result.String{Value: ""}, s.eval(ast.BodyQuery{}, resp))
	s.Equal(result.None{}, s.eval(ast.VariableQuery{Name: expr("token")}, resp))
}

func (s *CaptureTestSuite) TestUndefinedVariableInExpression() {
	resp := s.fetch("/api/users")

	_, err := s.Evaluator.Eval(ast.JSONPathQuery{Expr: ast.Expr{Value: "$.users[{{idx}}]", Begin: ast.Position{Line: 4, Column: 12}}}, resp, s.Vars)
	var renderErr *template.RenderError
	s.Require().ErrorAs(err, &renderErr)
	s.Equal(ast.Position{Line: 4, Column: 12}, renderErr.Pos)
}

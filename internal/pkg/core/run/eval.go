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

// Package run evaluates queries against a completed HTTP exchange.
//
// Evaluation reads the response and the variable bindings and never
// modifies them, so one Evaluator may serve concurrent callers as long
// as nobody writes to the bindings meanwhile.
package run

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/apache/hurl-go/internal/pkg/core/ast"
	"github.com/apache/hurl-go/internal/pkg/core/httpresp"
	"github.com/apache/hurl-go/internal/pkg/core/result"
	"github.com/apache/hurl-go/internal/pkg/core/variables"
	"github.com/apache/hurl-go/internal/pkg/logger"
	"github.com/apache/hurl-go/internal/pkg/query/jsonpath"
	"github.com/apache/hurl-go/internal/pkg/query/xpath"
	"github.com/apache/hurl-go/internal/pkg/template"
)

// Evaluator turns a Query into a Result.
type Evaluator struct {
	handler  slog.Handler
	logger   *slog.Logger
	search   func(expr, body string) (xpath.Result, error)
	patterns *patternCache
}

// NewEvaluator returns an evaluator parsing XPath bodies as HTML and
// compiling regex patterns on every call, unless options say otherwise.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		search: xpath.EvaluateHTML,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply evaluator option: %w", err)
		}
	}
	e.logger = logger.Setup(e.handler, "run")
	return e, nil
}

// Eval evaluates q with the default evaluator. Its logger follows the
// process default handler at call time, so a later slog.SetDefault is
// honored.
func Eval(q ast.Query, resp *httpresp.Response, vars variables.Lookup) (result.Result, error) {
	e := Evaluator{
		logger: logger.Setup(nil, "run"),
		search: xpath.EvaluateHTML,
	}
	return e.Eval(q, resp, vars)
}

// Eval evaluates q against resp. Errors are *InvalidQueryError,
// *template.RenderError or *xpath.EvaluationError.
func (e *Evaluator) Eval(q ast.Query, resp *httpresp.Response, vars variables.Lookup) (result.Result, error) {
	res, err := e.eval(q, resp, vars)
	if err != nil {
		e.logger.Debug("query failed", "kind", q.Kind(), "error", err)
		return nil, err
	}
	e.logger.Debug("query evaluated", "kind", q.Kind(), "result", res.Kind())
	return res, nil
}

func (e *Evaluator) eval(q ast.Query, resp *httpresp.Response, vars variables.Lookup) (result.Result, error) {
	switch q := q.(type) {
	case ast.StatusQuery:
		return result.Number{Value: float64(resp.StatusCode)}, nil
	case ast.HeaderQuery:
		return evalHeader(q, resp), nil
	case ast.CookieQuery:
		return evalCookie(q, resp), nil
	case ast.BodyQuery:
		body, err := bodyText(resp)
		if err != nil {
			return nil, err
		}
		return result.String{Value: body}, nil
	case ast.XPathQuery:
		return e.evalXPath(q, resp, vars)
	case ast.JSONPathQuery:
		return evalJSONPath(q, resp, vars)
	case ast.RegexQuery:
		return e.evalRegex(q, resp, vars)
	case ast.VariableQuery:
		return evalVariable(q, vars), nil
	default:
		panic(fmt.Sprintf("run: unexpected query %T", q))
	}
}

func evalHeader(q ast.HeaderQuery, resp *httpresp.Response) result.Result {
	values := resp.HeaderValues(q.Name.Value)
	switch len(values) {
	case 0:
		return result.None{}
	case 1:
		return result.String{Value: values[0]}
	default:
		return result.List{Size: len(values)}
	}
}

func evalCookie(q ast.CookieQuery, resp *httpresp.Response) result.Result {
	for _, line := range resp.HeaderValues("Set-Cookie") {
		name, value, ok := parseSetCookie(line)
		if ok && name == q.Name.Value {
			return result.String{Value: value}
		}
	}
	return result.None{}
}

// parseSetCookie reads the name and value of one Set-Cookie line. Values
// net/http refuses under RFC 6265 (JSON, stray quotes) are kept raw.
func parseSetCookie(line string) (string, string, bool) {
	if cookie, err := http.ParseSetCookie(line); err == nil {
		return cookie.Name, cookie.Value, true
	}
	pair, _, _ := strings.Cut(line, ";")
	name, value, found := strings.Cut(pair, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return name, value, true
}

func (e *Evaluator) evalXPath(q ast.XPathQuery, resp *httpresp.Response, vars variables.Lookup) (result.Result, error) {
	expr, body, err := renderAndDecode(q.Expr, resp, vars)
	if err != nil {
		return nil, err
	}
	found, err := e.search(expr, body)
	if err != nil {
		return nil, err
	}
	return FromXPath(found), nil
}

func evalJSONPath(q ast.JSONPathQuery, resp *httpresp.Response, vars variables.Lookup) (result.Result, error) {
	expr, body, err := renderAndDecode(q.Expr, resp, vars)
	if err != nil {
		return nil, err
	}
	return FromJSONPath(jsonpath.Evaluate(expr, body)), nil
}

func (e *Evaluator) evalRegex(q ast.RegexQuery, resp *httpresp.Response, vars variables.Lookup) (result.Result, error) {
	pattern, body, err := renderAndDecode(q.Expr, resp, vars)
	if err != nil {
		return nil, err
	}
	re, err := e.patterns.compile(pattern)
	if err != nil {
		return nil, &InvalidQueryError{Reason: fmt.Sprintf("invalid regex pattern %q", pattern), Err: err}
	}
	// Only the first capture group is consulted.
	match := re.FindStringSubmatch(body)
	if len(match) < 2 {
		return result.None{}, nil
	}
	return result.String{Value: match[1]}, nil
}

func evalVariable(q ast.VariableQuery, vars variables.Lookup) result.Result {
	if vars == nil {
		return result.None{}
	}
	value, ok := vars.Get(q.Name.Value)
	if !ok || value == nil {
		return result.None{}
	}
	return value
}

func renderAndDecode(expr ast.Expr, resp *httpresp.Response, vars variables.Lookup) (string, string, error) {
	rendered, err := template.Render(expr.Value, vars, expr.Begin)
	if err != nil {
		return "", "", err
	}
	body, err := bodyText(resp)
	if err != nil {
		return "", "", err
	}
	return rendered, body, nil
}

func bodyText(resp *httpresp.Response) (string, error) {
	text, err := resp.Text()
	if err != nil {
		return "", &InvalidQueryError{
			Charset: resp.Charset,
			Reason:  "undecodable response body",
			Err:     err,
		}
	}
	return text, nil
}

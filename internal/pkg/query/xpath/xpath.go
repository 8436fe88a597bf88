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

// Package xpath evaluates XPath 1.0 expressions against HTML or XML text.
package xpath

import (
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Result is one of BooleanResult, NumberResult, StringResult or
// NodeSetResult.
//
//sumtype:decl
type Result interface {
	isXPathResult()
}

type BooleanResult struct {
	Value bool
}

type NumberResult struct {
	Value float64
}

type StringResult struct {
	Value string
}

// NodeSetResult is the number of nodes an expression selected.
type NodeSetResult struct {
	Size int
}

func (BooleanResult) isXPathResult() {}
func (NumberResult) isXPathResult()  {}
func (StringResult) isXPathResult()  {}
func (NodeSetResult) isXPathResult() {}

// EvaluationError is returned when an expression can not be compiled,
// the document can not be parsed, or evaluation fails.
type EvaluationError struct {
	Expression string
	Reason     string
	InnerError error
}

func (e *EvaluationError) Error() string {
	if e.InnerError != nil {
		return fmt.Sprintf("xpath evaluation failed for expression '%s': %s (Caused by: %v)", e.Expression, e.Reason, e.InnerError)
	}
	return fmt.Sprintf("xpath evaluation failed for expression '%s': %s", e.Expression, e.Reason)
}

func (e *EvaluationError) Unwrap() error { return e.InnerError }

// EvaluateHTML parses body leniently as an HTML document and evaluates
// expr against it.
func EvaluateHTML(expr, body string) (Result, error) {
	compiled, err := compile(expr)
	if err != nil {
		return nil, err
	}
	doc, err := htmlquery.Parse(strings.NewReader(body))
	if err != nil {
		return nil, &EvaluationError{Expression: expr, Reason: "HTML parsing failed", InnerError: err}
	}
	return evaluate(expr, compiled, htmlquery.CreateXPathNavigator(doc))
}

// EvaluateXML parses body as a well-formed XML document and evaluates
// expr against it.
func EvaluateXML(expr, body string) (Result, error) {
	compiled, err := compile(expr)
	if err != nil {
		return nil, err
	}
	doc, err := xmlquery.Parse(strings.NewReader(body))
	if err != nil {
		return nil, &EvaluationError{Expression: expr, Reason: "XML parsing failed", InnerError: err}
	}
	return evaluate(expr, compiled, xmlquery.CreateXPathNavigator(doc))
}

func compile(expr string) (compiled *xpath.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			compiled, err = nil, &EvaluationError{Expression: expr, Reason: "XPath compilation failed", InnerError: fmt.Errorf("%v", r)}
		}
	}()
	compiled, err = xpath.Compile(expr)
	if err != nil {
		return nil, &EvaluationError{Expression: expr, Reason: "XPath compilation failed", InnerError: err}
	}
	return compiled, nil
}

func evaluate(expr string, compiled *xpath.Expr, nav xpath.NodeNavigator) (res Result, err error) {
	// antchfx/xpath panics on some runtime type errors, e.g. sum() over
	// non-numeric nodes.
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, &EvaluationError{Expression: expr, Reason: fmt.Sprint(r)}
		}
	}()

	switch v := compiled.Evaluate(nav).(type) {
	case bool:
		return BooleanResult{Value: v}, nil
	case float64:
		return NumberResult{Value: v}, nil
	case string:
		return StringResult{Value: v}, nil
	case *xpath.NodeIterator:
		size := 0
		for v.MoveNext() {
			size++
		}
		return NodeSetResult{Size: size}, nil
	default:
		return nil, &EvaluationError{Expression: expr, Reason: fmt.Sprintf("unexpected XPath result type: %T", v)}
	}
}

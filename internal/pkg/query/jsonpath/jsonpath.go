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

// Package jsonpath evaluates JSONPath expressions against JSON text.
//
// A definite path (names and indices only) selects at most one value and
// fails with ErrNotFound when nothing is there. Any other path
// (wildcards, slices, unions, filters, recursive descent) yields an
// Array holding every match, possibly empty.
package jsonpath

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/tidwall/gjson"
)

// Value is one of Boolean, Number, String, Array, Object or Null.
//
//sumtype:decl
type Value interface {
	isJSONValue()
}

type Boolean struct {
	Value bool
}

type Number struct {
	Value float64
}

type String struct {
	Value string
}

type Array struct {
	Values []any
}

type Object struct {
	Value map[string]any
}

type Null struct{}

func (Boolean) isJSONValue() {}
func (Number) isJSONValue()  {}
func (String) isJSONValue()  {}
func (Array) isJSONValue()   {}
func (Object) isJSONValue()  {}
func (Null) isJSONValue()    {}

var (
	// ErrNotFound is returned when a definite path selects nothing.
	ErrNotFound = errors.New("jsonpath: no value at path")
	// ErrInvalidJSON is returned when the document is not valid JSON.
	ErrInvalidJSON = errors.New("jsonpath: invalid JSON document")
)

// SyntaxError reports an expression that can not be parsed.
type SyntaxError struct {
	Expression string
	Err        error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("jsonpath: invalid expression '%s': %v", e.Expression, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Evaluate applies expr to the JSON document in text.
func Evaluate(expr, text string) (Value, error) {
	path, err := jp.ParseString(expr)
	if err != nil {
		return nil, &SyntaxError{Expression: expr, Err: err}
	}
	if !gjson.Valid(text) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.Parse(text).Value()

	matches := path.Get(doc)
	if !definite(path) {
		return Array{Values: matches}, nil
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return toValue(matches[0])
}

func definite(path jp.Expr) bool {
	for _, frag := range path {
		switch frag.(type) {
		case jp.Wildcard, jp.Descent, jp.Slice, jp.Union, *jp.Filter:
			return false
		}
	}
	return true
}

func toValue(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Boolean{Value: t}, nil
	case float64:
		return Number{Value: t}, nil
	case int64:
		return Number{Value: float64(t)}, nil
	case int:
		return Number{Value: float64(t)}, nil
	case string:
		return String{Value: t}, nil
	case []any:
		return Array{Values: t}, nil
	case map[string]any:
		return Object{Value: t}, nil
	default:
		return nil, fmt.Errorf("jsonpath: unsupported value type %T", v)
	}
}

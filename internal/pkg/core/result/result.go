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

// Package result defines the value produced by evaluating a query.
package result

import (
	"fmt"
	"reflect"
	"strconv"
)

// Result is one of None, Bool, Number, String, List, Object or NodeSet.
// Results are plain values: two results with the same variant and payload
// are interchangeable.
//
//sumtype:decl
type Result interface {
	Kind() Kind
	isResult()
}

// Kind names a Result variant.
type Kind string

const (
	NoneKind    Kind = "none"
	BoolKind    Kind = "boolean"
	NumberKind  Kind = "number"
	StringKind  Kind = "string"
	ListKind    Kind = "list"
	ObjectKind  Kind = "object"
	NodeSetKind Kind = "nodeset"
)

// None is the absence of a value.
type None struct{}

type Bool struct {
	Value bool
}

type Number struct {
	Value float64
}

type String struct {
	Value string
}

// List is a multi-valued result. Only the number of elements is kept.
type List struct {
	Size int
}

// Object carries a structured JSON value (map[string]any). A nil Value
// stands for JSON null.
type Object struct {
	Value any
}

// NodeSet is a set of matched document nodes. Only its size is kept.
type NodeSet struct {
	Size int
}

func (None) Kind() Kind    { return NoneKind }
func (Bool) Kind() Kind    { return BoolKind }
func (Number) Kind() Kind  { return NumberKind }
func (String) Kind() Kind  { return StringKind }
func (List) Kind() Kind    { return ListKind }
func (Object) Kind() Kind  { return ObjectKind }
func (NodeSet) Kind() Kind { return NodeSetKind }

func (None) isResult()    {}
func (Bool) isResult()    {}
func (Number) isResult()  {}
func (String) isResult()  {}
func (List) isResult()    {}
func (Object) isResult()  {}
func (NodeSet) isResult() {}

// Equal reports whether a and b hold the same variant and payload.
// Object payloads are compared structurally, which plain == cannot do
// for maps.
func Equal(a, b Result) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if ao, ok := a.(Object); ok {
		return reflect.DeepEqual(ao.Value, b.(Object).Value)
	}
	return a == b
}

// Describe renders r for diagnostics, e.g. `string <abc>` or `list of size 2`.
func Describe(r Result) string {
	switch v := r.(type) {
	case None:
		return "none"
	case Bool:
		return fmt.Sprintf("boolean <%t>", v.Value)
	case Number:
		return "number <" + FormatNumber(v.Value) + ">"
	case String:
		return "string <" + v.Value + ">"
	case List:
		return fmt.Sprintf("list of size %d", v.Size)
	case Object:
		if v.Value == nil {
			return "null"
		}
		return fmt.Sprintf("object <%v>", v.Value)
	case NodeSet:
		return fmt.Sprintf("node set of size %d", v.Size)
	default:
		panic(fmt.Sprintf("result: unexpected variant %T", r))
	}
}

// FormatNumber prints f in its shortest decimal form: 200, 1.5, -0.25.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

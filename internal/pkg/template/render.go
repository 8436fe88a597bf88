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

// Package template substitutes {{name}} placeholders in query expressions.
package template

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/apache/hurl-go/internal/pkg/core/ast"
	"github.com/apache/hurl-go/internal/pkg/core/result"
	"github.com/apache/hurl-go/internal/pkg/core/variables"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

var variableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// RenderError reports a template that could not be rendered. Pos is the
// start of the expression that carried the template.
type RenderError struct {
	Pos     ast.Position
	Message string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("template error at %s: %s", e.Pos, e.Message)
}

// Render replaces every {{name}} in text with the bound value of name.
// Surrounding whitespace inside the braces is ignored.
func Render(text string, vars variables.Lookup, pos ast.Position) (string, error) {
	if !strings.Contains(text, startTag) {
		return text, nil
	}
	tpl, err := fasttemplate.NewTemplate(text, startTag, endTag)
	if err != nil {
		return "", &RenderError{Pos: pos, Message: "missing closing " + endTag}
	}
	rendered, err := tpl.ExecuteFuncStringWithErr(
		func(w io.Writer, tag string) (int, error) {
			value, err := lookup(strings.TrimSpace(tag), vars)
			if err != nil {
				return 0, err
			}
			return io.WriteString(w, value)
		})
	if err != nil {
		var renderErr *RenderError
		if errors.As(err, &renderErr) {
			renderErr.Pos = pos
			return "", renderErr
		}
		return "", &RenderError{Pos: pos, Message: err.Error()}
	}
	return rendered, nil
}

func lookup(name string, vars variables.Lookup) (string, error) {
	if !variableName.MatchString(name) {
		return "", &RenderError{Message: fmt.Sprintf("invalid variable name %q", name)}
	}
	var value result.Result
	ok := false
	if vars != nil {
		value, ok = vars.Get(name)
	}
	if !ok || value == nil {
		return "", &RenderError{Message: fmt.Sprintf("undefined variable %s", name)}
	}
	switch v := value.(type) {
	case result.String:
		return v.Value, nil
	case result.Number:
		return result.FormatNumber(v.Value), nil
	case result.Bool:
		return fmt.Sprintf("%t", v.Value), nil
	case result.None, result.List, result.Object, result.NodeSet:
		return "", &RenderError{Message: fmt.Sprintf("variable %s holds %s and can not be rendered", name, result.Describe(v))}
	default:
		panic(fmt.Sprintf("template: unexpected result variant %T", value))
	}
}

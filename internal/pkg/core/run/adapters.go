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

package run

import (
	"fmt"

	"github.com/apache/hurl-go/internal/pkg/core/result"
	"github.com/apache/hurl-go/internal/pkg/query/jsonpath"
	"github.com/apache/hurl-go/internal/pkg/query/xpath"
)

// FromXPath converts a search engine result. Matched nodes are reduced
// to their count.
func FromXPath(r xpath.Result) result.Result {
	switch v := r.(type) {
	case xpath.BooleanResult:
		return result.Bool{Value: v.Value}
	case xpath.NumberResult:
		return result.Number{Value: v.Value}
	case xpath.StringResult:
		return result.String{Value: v.Value}
	case xpath.NodeSetResult:
		return result.NodeSet{Size: v.Size}
	default:
		panic(fmt.Sprintf("run: unexpected xpath result %T", r))
	}
}

// FromJSONPath converts a JSON engine outcome. Every engine error,
// whatever its cause, becomes None.
func FromJSONPath(v jsonpath.Value, err error) result.Result {
	if err != nil {
		return result.None{}
	}
	switch t := v.(type) {
	case jsonpath.Boolean:
		return result.Bool{Value: t.Value}
	case jsonpath.Number:
		return result.Number{Value: t.Value}
	case jsonpath.String:
		return result.String{Value: t.Value}
	case jsonpath.Array:
		return result.List{Size: len(t.Values)}
	case jsonpath.Object:
		return result.Object{Value: t.Value}
	case jsonpath.Null:
		return result.Object{}
	default:
		panic(fmt.Sprintf("run: unexpected jsonpath value %T", v))
	}
}

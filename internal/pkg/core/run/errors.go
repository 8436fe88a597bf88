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
	"errors"
	"fmt"
)

// ErrInvalidQuery is matched by every *InvalidQueryError.
var ErrInvalidQuery = errors.New("invalid query")

// InvalidQueryError reports a query that can not be evaluated against
// the response: an undecodable body or an uncompilable pattern. Charset
// is set when the body failed to decode.
type InvalidQueryError struct {
	Charset string
	Reason  string
	Err     error
}

func (e *InvalidQueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid query: %s: %v", e.Reason, e.Err)
	}
	return "invalid query: " + e.Reason
}

func (e *InvalidQueryError) Unwrap() error { return e.Err }

func (e *InvalidQueryError) Is(target error) bool { return target == ErrInvalidQuery }

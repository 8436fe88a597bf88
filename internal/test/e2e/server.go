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
	"fmt"
	"net/http"
)

const shopPage = `<!DOCTYPE html>
<html>
<head><title>Shop</title></head>
<body>
  <h1>Products</h1>
  <ul>
    <li class="product" data-id="1">Pen</li>
    <li class="product" data-id="2">Book</li>
    <li class="sold-out" data-id="3">Lamp</li>
  </ul>
  <p id="footer">status: 200 ok</p>
</body>
</html>`

const usersJSON = `{
  "users": [
    {"id": 1, "name": "alice", "active": true},
    {"id": 2, "name": "bob", "active": false}
  ],
  "total": 2,
  "next": null,
  "token": "t0k3n"
}`

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /shop", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, shopPage)
	})
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Add("Set-Cookie", "session=s3ss10n; Path=/; HttpOnly")
		w.Header().Add("Set-Cookie", "lang=en")
		fmt.Fprint(w, usersJSON)
	})
	mux.HandleFunc("GET /api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" && r.URL.Query().Get("token") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": %q}`, r.PathValue("id"))
	})
	mux.HandleFunc("GET /legacy", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=ISO-8859-1")
		w.Write([]byte("caf\xe9 cr\xe8me"))
	})
	mux.HandleFunc("GET /broken", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte{'o', 'k', 0xff, 0xfe})
	})
	return mux
}

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

// Package e2e contains end-to-end tests that evaluate queries against
// responses fetched from a live HTTP server.
package e2e

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/apache/hurl-go/internal/pkg/config"
	"github.com/apache/hurl-go/internal/pkg/core/ast"
	"github.com/apache/hurl-go/internal/pkg/core/httpresp"
	"github.com/apache/hurl-go/internal/pkg/core/result"
	"github.com/apache/hurl-go/internal/pkg/core/run"
	"github.com/apache/hurl-go/internal/pkg/core/variables"
	"github.com/apache/hurl-go/internal/pkg/logger"
)

const TestTimeout = 10 * time.Second

// QueryE2ESuite is the base suite for all e2e tests. It serves canned
// endpoints and builds an evaluator from a config file.
type QueryE2ESuite struct {
	suite.Suite
	Server     *httptest.Server
	TempDir    string
	ConfigPath string
	Config     config.Config
	LogBuffer  *bytes.Buffer
	Evaluator  *run.Evaluator
	Vars       variables.Jar
}

// SetupSuite starts the server and loads the configuration.
func (s *QueryE2ESuite) SetupSuite() {
	tempDir, err := os.MkdirTemp("", "query-e2e-test-*")
	s.Require().NoError(err, "Failed to create temp directory")
	s.TempDir = tempDir
	s.ConfigPath = filepath.Join(s.TempDir, "conf", "deployment.toml")
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.ConfigPath), 0755))
	s.createDeploymentConfig()

	s.Config, err = config.Load(s.ConfigPath)
	s.Require().NoError(err, "Failed to load config")

	s.LogBuffer = &bytes.Buffer{}
	handler, err := logger.NewHandler(s.Config.Logger, s.LogBuffer)
	s.Require().NoError(err, "Failed to create log handler")

	s.Evaluator, err = run.NewEvaluator(run.WithConfig(s.Config.Query), run.WithLogHandler(handler))
	s.Require().NoError(err, "Failed to create evaluator")

	s.Server = httptest.NewServer(newTestMux())
}

// TearDownSuite stops the server and removes temporary files.
func (s *QueryE2ESuite) TearDownSuite() {
	if s.Server != nil {
		s.Server.Close()
	}
	if s.TempDir != "" {
		os.RemoveAll(s.TempDir)
	}
}

// SetupTest gives every test fresh bindings.
func (s *QueryE2ESuite) SetupTest() {
	s.Vars = variables.NewJar()
}

func (s *QueryE2ESuite) createDeploymentConfig() {
	content := `[query]
default_charset = "utf-8"
xpath_document = "html"
regex_cache = true

[logger]
level = "debug"
format = "text"
`
	err := os.WriteFile(s.ConfigPath, []byte(content), 0644)
	s.Require().NoError(err, "Failed to create deployment.toml")
}

// fetch performs a GET against the test server and materializes the
// response.
func (s *QueryE2ESuite) fetch(path string) *httpresp.Response {
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Server.URL+path, nil)
	s.Require().NoError(err)
	// Keep cookies on the response instead of a client jar.
	client := &http.Client{Timeout: TestTimeout}
	resp, err := client.Do(req)
	s.Require().NoError(err, "Failed to call "+path)

	materialized, err := httpresp.FromHTTP(resp, s.Config.Query.DefaultCharset)
	s.Require().NoError(err)
	return materialized
}

func (s *QueryE2ESuite) eval(q ast.Query, resp *httpresp.Response) result.Result {
	got, err := s.Evaluator.Eval(q, resp, s.Vars)
	s.Require().NoError(err, "Failed to evaluate %s query", q.Kind())
	return got
}

func expr(value string) ast.Expr {
	return ast.Expr{Value: value, Begin: ast.Position{Line: 1, Column: 1}}
}

// RunE2ETests runs the given suites.
func RunE2ETests(t *testing.T, testCases ...suite.TestingSuite) {
	for _, testCase := range testCases {
		suite.Run(t, testCase)
	}
}

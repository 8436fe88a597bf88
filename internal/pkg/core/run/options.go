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
	"log/slog"

	"github.com/apache/hurl-go/internal/pkg/config"
	"github.com/apache/hurl-go/internal/pkg/query/xpath"
)

// Option configures an Evaluator.
type Option func(*Evaluator) error

// WithLogHandler sets the handler evaluation records are written to.
func WithLogHandler(handler slog.Handler) Option {
	return func(e *Evaluator) error {
		if handler != nil {
			e.handler = handler
		}
		return nil
	}
}

// WithDocumentMode selects how bodies are parsed for XPath queries:
// config.DocumentHTML or config.DocumentXML.
func WithDocumentMode(mode string) Option {
	return func(e *Evaluator) error {
		switch mode {
		case config.DocumentHTML:
			e.search = xpath.EvaluateHTML
		case config.DocumentXML:
			e.search = xpath.EvaluateXML
		default:
			return fmt.Errorf("unsupported xpath document mode: %s", mode)
		}
		return nil
	}
}

// WithRegexCache keeps compiled regex query patterns between calls.
func WithRegexCache(enabled bool) Option {
	return func(e *Evaluator) error {
		if enabled {
			e.patterns = newPatternCache()
		} else {
			e.patterns = nil
		}
		return nil
	}
}

// WithConfig applies the [query] section of a configuration file.
func WithConfig(cfg config.Query) Option {
	return func(e *Evaluator) error {
		if err := WithDocumentMode(cfg.XPathDocument)(e); err != nil {
			return err
		}
		return WithRegexCache(cfg.RegexCache)(e)
	}
}

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

// Package logger builds slog handlers from configuration.
package logger

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/apache/hurl-go/internal/pkg/config"
)

// NewHandler returns a text or JSON handler writing to w at the
// configured level.
func NewHandler(cfg config.Logger, w io.Writer) (slog.Handler, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.Format {
	case config.FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	case config.FormatText, "":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}
}

// Setup returns a logger for one component. A nil handler falls back to
// the process default handler. The logger is grouped under group when
// it is not empty.
func Setup(handler slog.Handler, group string) *slog.Logger {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if group != "" {
		handler = handler.WithGroup(group)
	}
	return slog.New(handler)
}

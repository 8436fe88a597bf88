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

// Package config loads runtime settings from a TOML file.
//
// Example:
//
//	[query]
//	default_charset = "utf-8"
//	xpath_document = "html"
//	regex_cache = true
//
//	[logger]
//	level = "debug"
//	format = "json"
package config

import (
	"fmt"
	"log/slog"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/encoding/htmlindex"
)

// Document modes for XPath queries.
const (
	DocumentHTML = "html"
	DocumentXML  = "xml"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Query  Query  `koanf:"query"`
	Logger Logger `koanf:"logger"`
}

// Query controls query evaluation.
type Query struct {
	// DefaultCharset decodes bodies whose Content-Type carries no charset.
	DefaultCharset string `koanf:"default_charset"`
	// XPathDocument selects how bodies are parsed for XPath queries.
	XPathDocument string `koanf:"xpath_document"`
	// RegexCache keeps compiled regex query patterns between calls.
	RegexCache bool `koanf:"regex_cache"`
}

type Logger struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Query: Query{
			DefaultCharset: "utf-8",
			XPathDocument:  DocumentHTML,
		},
		Logger: Logger{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Load reads the TOML file at path on top of Default. Keys missing from
// the file keep their default value.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every setting has a usable value.
func (c Config) Validate() error {
	if _, err := htmlindex.Get(c.Query.DefaultCharset); err != nil {
		return fmt.Errorf("query.default_charset: unknown charset %q", c.Query.DefaultCharset)
	}
	switch c.Query.XPathDocument {
	case DocumentHTML, DocumentXML:
	default:
		return fmt.Errorf("query.xpath_document: must be %q or %q, got %q", DocumentHTML, DocumentXML, c.Query.XPathDocument)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logger.Level)); err != nil {
		return fmt.Errorf("logger.level: %w", err)
	}
	switch c.Logger.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("logger.format: must be %q or %q, got %q", FormatText, FormatJSON, c.Logger.Format)
	}
	return nil
}

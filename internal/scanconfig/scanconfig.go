// SPDX-License-Identifier: MIT

// Package scanconfig owns the utility-CSS content-scan configuration: a
// declarative YAML document listing the source globs the CSS scanner reads
// class names from, plus the (empty) theme extension and plugin structures.
// The package loads, validates, round-trips and renders the artifact the
// external CSS tool consumes.
package scanconfig

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the declarative scan configuration.
type Config struct {
	Content []string `yaml:"content"`
	Theme   Theme    `yaml:"theme"`
	Plugins []string `yaml:"plugins"`
}

// Theme holds the theme extension mapping. The console ships it empty.
type Theme struct {
	Extend map[string]any `yaml:"extend"`
}

// Default returns the configuration shipped with the console.
func Default() Config {
	return Config{
		Content: []string{
			"./public/index.html",
			"./apps/console/src/**/*.{rs,html}",
		},
		Theme:   Theme{Extend: map[string]any{}},
		Plugins: []string{},
	}
}

// Load reads and strictly decodes a scan configuration file. Unknown keys
// are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scan config: %w", err)
	}
	return Decode(data)
}

// Decode strictly decodes a scan configuration document.
func Decode(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse scan config: %w", err)
	}
	if cfg.Theme.Extend == nil {
		cfg.Theme.Extend = map[string]any{}
	}
	if cfg.Plugins == nil {
		cfg.Plugins = []string{}
	}
	return cfg, nil
}

// Encode serializes the configuration. Glob order and the empty extend and
// plugin structures are preserved so the document round-trips unchanged.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode scan config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode scan config: %w", err)
	}
	return buf.Bytes(), nil
}

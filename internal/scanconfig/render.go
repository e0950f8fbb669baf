// SPDX-License-Identifier: MIT

package scanconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/renameio/v2"
)

// Render produces the tailwind.config.js artifact for the CSS tool from the
// declarative configuration. Output is deterministic: content globs keep
// their declared order, theme extension keys are sorted.
func Render(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("/** @type {import('tailwindcss').Config} */\n")
	buf.WriteString("module.exports = {\n")

	buf.WriteString("  content: [\n")
	for _, pattern := range cfg.Content {
		entry, err := json.Marshal(pattern)
		if err != nil {
			return nil, fmt.Errorf("render content pattern: %w", err)
		}
		fmt.Fprintf(&buf, "    %s,\n", entry)
	}
	buf.WriteString("  ],\n")

	extend, err := renderExtend(cfg.Theme.Extend)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "  theme: {\n    extend: %s,\n  },\n", extend)

	if len(cfg.Plugins) == 0 {
		buf.WriteString("  plugins: [],\n")
	} else {
		buf.WriteString("  plugins: [\n")
		for _, plugin := range cfg.Plugins {
			fmt.Fprintf(&buf, "    require(%q),\n", plugin)
		}
		buf.WriteString("  ],\n")
	}

	buf.WriteString("};\n")
	return buf.Bytes(), nil
}

func renderExtend(extend map[string]any) (string, error) {
	if len(extend) == 0 {
		return "{}", nil
	}
	// encoding/json sorts map keys, which keeps the artifact stable.
	out, err := json.MarshalIndent(extend, "  ", "  ")
	if err != nil {
		return "", fmt.Errorf("render theme extension: %w", err)
	}
	return string(out), nil
}

// WriteFile atomically writes the rendered artifact to path.
func WriteFile(path string, cfg Config) error {
	data, err := Render(cfg)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Save atomically writes the declarative YAML document to path.
func Save(path string, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

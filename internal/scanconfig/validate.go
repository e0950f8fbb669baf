// SPDX-License-Identifier: MIT

package scanconfig

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	ErrNoContent        = errors.New("scanconfig: content glob list is empty")
	ErrDuplicatePattern = errors.New("scanconfig: duplicate content pattern")
	ErrBadPattern       = errors.New("scanconfig: malformed content pattern")
)

// Validate checks the configuration: at least one content glob, every glob
// well-formed (brace alternation expanded and each alternative checked),
// and no duplicate patterns.
func Validate(cfg Config) error {
	if len(cfg.Content) == 0 {
		return ErrNoContent
	}

	seen := make(map[string]bool, len(cfg.Content))
	for _, pattern := range cfg.Content {
		if seen[pattern] {
			return fmt.Errorf("%w: %q", ErrDuplicatePattern, pattern)
		}
		seen[pattern] = true

		expanded, err := ExpandBraces(pattern)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrBadPattern, pattern, err)
		}
		for _, alt := range expanded {
			if _, err := path.Match(alt, ""); err != nil {
				return fmt.Errorf("%w: %q", ErrBadPattern, pattern)
			}
		}
	}
	return nil
}

// ExpandBraces expands {a,b} alternation groups in a glob pattern into the
// list of plain patterns they denote. Nested groups are expanded
// recursively. A pattern without braces expands to itself.
func ExpandBraces(pattern string) ([]string, error) {
	open := strings.IndexByte(pattern, '{')
	if open == -1 {
		if strings.IndexByte(pattern, '}') != -1 {
			return nil, errors.New("unmatched '}'")
		}
		return []string{pattern}, nil
	}

	depth := 0
	closing := -1
	for i := open; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				closing = i
			}
		}
		if closing != -1 {
			break
		}
	}
	if closing == -1 {
		return nil, errors.New("unmatched '{'")
	}

	prefix := pattern[:open]
	group := pattern[open+1 : closing]
	suffix := pattern[closing+1:]

	var out []string
	for _, alt := range splitTopLevel(group) {
		expanded, err := ExpandBraces(prefix + alt + suffix)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

// splitTopLevel splits a brace group body on commas that are not inside a
// nested group.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

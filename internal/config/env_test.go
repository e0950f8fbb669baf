// SPDX-License-Identifier: MIT

package config

import (
	"testing"
	"time"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		envSet       bool
		want         string
	}{
		{
			name:         "environment variable set",
			key:          "TEST_STRING",
			defaultValue: "default",
			envValue:     "from-env",
			envSet:       true,
			want:         "from-env",
		},
		{
			name:         "environment variable not set",
			key:          "TEST_STRING_UNSET",
			defaultValue: "default",
			envSet:       false,
			want:         "default",
		},
		{
			name:         "environment variable empty string",
			key:          "TEST_STRING_EMPTY",
			defaultValue: "default",
			envValue:     "",
			envSet:       true,
			want:         "default",
		},
		{
			name:         "sensitive variable (token)",
			key:          "TEST_TOKEN",
			defaultValue: "default",
			envValue:     "secret123",
			envSet:       true,
			want:         "secret123",
		},
		{
			name:         "sensitive variable empty falls back",
			key:          "TEST_TOKEN_EMPTY",
			defaultValue: "default",
			envValue:     "",
			envSet:       true,
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envSet {
				t.Setenv(tt.key, tt.envValue)
			}
			if got := ParseString(tt.key, tt.defaultValue); got != tt.want {
				t.Errorf("ParseString(%q, %q) = %q, want %q", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue int
		envValue     string
		envSet       bool
		want         int
	}{
		{name: "valid integer", key: "TEST_INT", defaultValue: 10, envValue: "42", envSet: true, want: 42},
		{name: "not set", key: "TEST_INT_UNSET", defaultValue: 10, envSet: false, want: 10},
		{name: "empty string", key: "TEST_INT_EMPTY", defaultValue: 10, envValue: "", envSet: true, want: 10},
		{name: "invalid integer", key: "TEST_INT_BAD", defaultValue: 10, envValue: "abc", envSet: true, want: 10},
		{name: "negative integer", key: "TEST_INT_NEG", defaultValue: 10, envValue: "-3", envSet: true, want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envSet {
				t.Setenv(tt.key, tt.envValue)
			}
			if got := ParseInt(tt.key, tt.defaultValue); got != tt.want {
				t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue time.Duration
		envValue     string
		envSet       bool
		want         time.Duration
	}{
		{name: "valid duration", key: "TEST_DUR", defaultValue: time.Second, envValue: "5s", envSet: true, want: 5 * time.Second},
		{name: "not set", key: "TEST_DUR_UNSET", defaultValue: time.Second, envSet: false, want: time.Second},
		{name: "invalid duration", key: "TEST_DUR_BAD", defaultValue: time.Second, envValue: "soon", envSet: true, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envSet {
				t.Setenv(tt.key, tt.envValue)
			}
			if got := ParseDuration(tt.key, tt.defaultValue); got != tt.want {
				t.Errorf("ParseDuration(%q, %v) = %v, want %v", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue bool
		envValue     string
		envSet       bool
		want         bool
	}{
		{name: "true", key: "TEST_BOOL", defaultValue: false, envValue: "true", envSet: true, want: true},
		{name: "yes", key: "TEST_BOOL_YES", defaultValue: false, envValue: "YES", envSet: true, want: true},
		{name: "zero", key: "TEST_BOOL_ZERO", defaultValue: true, envValue: "0", envSet: true, want: false},
		{name: "invalid", key: "TEST_BOOL_BAD", defaultValue: true, envValue: "maybe", envSet: true, want: true},
		{name: "not set", key: "TEST_BOOL_UNSET", defaultValue: true, envSet: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envSet {
				t.Setenv(tt.key, tt.envValue)
			}
			if got := ParseBool(tt.key, tt.defaultValue); got != tt.want {
				t.Errorf("ParseBool(%q, %v) = %v, want %v", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/soulseed/consolectl/internal/log"
)

// ParseString reads a string from an environment variable or returns the
// default value. Unset and empty both resolve to the default. It logs the
// source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		logger.Debug().
			Str(log.FieldKey, key).
			Str("default", defaultValue).
			Str(log.FieldSource, "default").
			Msg("using default value")
		return defaultValue
	}

	evt := logger.Debug().
		Str(log.FieldKey, key).
		Str(log.FieldSource, "environment")
	if sensitiveKey(key) {
		// Never log the value itself, only that it was set.
		evt.Bool("sensitive", true).Msg("using environment variable")
	} else {
		evt.Str("value", value).Msg("using environment variable")
	}
	return value
}

// sensitiveKey reports whether values for key must not appear in logs.
func sensitiveKey(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "token") || strings.Contains(k, "password")
}

// ParseInt reads an integer from an environment variable or returns the
// default value. It falls back to the default on parse errors.
func ParseInt(key string, defaultValue int) int {
	logger := log.WithComponent("config")
	if v, ok := os.LookupEnv(key); ok {
		if v == "" {
			return defaultValue
		}
		if i, err := strconv.Atoi(v); err == nil {
			logger.Debug().
				Str(log.FieldKey, key).
				Int("value", i).
				Str(log.FieldSource, "environment").
				Msg("using environment variable")
			return i
		}
		logger.Warn().
			Str(log.FieldKey, key).
			Str("value", v).
			Int("default", defaultValue).
			Msg("invalid integer in environment variable, using default")
	}
	return defaultValue
}

// ParseDuration reads a duration from an environment variable in Go duration
// format (e.g. "5s"). It falls back to the default on parse errors or empty
// variables.
func ParseDuration(key string, defaultValue time.Duration) time.Duration {
	logger := log.WithComponent("config")
	if v, ok := os.LookupEnv(key); ok {
		if v == "" {
			return defaultValue
		}
		if d, err := time.ParseDuration(v); err == nil {
			logger.Debug().
				Str(log.FieldKey, key).
				Dur("value", d).
				Str(log.FieldSource, "environment").
				Msg("using environment variable")
			return d
		}
		logger.Warn().
			Str(log.FieldKey, key).
			Str("value", v).
			Dur("default", defaultValue).
			Msg("invalid duration in environment variable, using default")
	}
	return defaultValue
}

// ParseBool reads a boolean from an environment variable or returns the
// default value. It accepts "true", "false", "1", "0", "yes", "no"
// (case-insensitive).
func ParseBool(key string, defaultValue bool) bool {
	logger := log.WithComponent("config")
	if v, ok := os.LookupEnv(key); ok {
		if v == "" {
			return defaultValue
		}
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		default:
			logger.Warn().
				Str(log.FieldKey, key).
				Str("value", v).
				Bool("default", defaultValue).
				Msg("invalid boolean in environment variable, using default")
			return defaultValue
		}
	}
	return defaultValue
}

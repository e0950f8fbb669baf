// SPDX-License-Identifier: MIT

// Package config resolves the SOULSEED_* environment configuration shared
// by the console launcher and the Thin-Waist client. Every variable is
// optional; unset or empty values fall back to literal defaults.
package config

import (
	"strings"
	"time"
)

// Environment variable names understood by consolectl.
const (
	EnvAPIBaseURL         = "SOULSEED_API_BASE_URL"
	EnvStreamBaseURL      = "SOULSEED_STREAM_BASE_URL"
	EnvDefaultTenant      = "SOULSEED_DEFAULT_TENANT"
	EnvDefaultSession     = "SOULSEED_DEFAULT_SESSION"
	EnvAuthToken          = "SOULSEED_AUTH_TOKEN"
	EnvProfile            = "SOULSEED_PROFILE"
	EnvSSETimeoutMS       = "SOULSEED_SSE_TIMEOUT_MS"
	EnvRequestTimeoutSecs = "SOULSEED_REQUEST_TIMEOUT_SECS"
)

// Literal defaults applied when a variable is unset or empty.
const (
	DefaultAPIBaseURL     = "http://localhost:8700/api/v1"
	DefaultTenant         = "1"
	DefaultSession        = "123"
	DefaultAuthToken      = "token"
	defaultSSETimeout     = 30 * time.Second
	defaultRequestTimeout = 15 * time.Second

	minSSETimeout     = time.Second
	minRequestTimeout = time.Second
)

// Profile selects the console build profile.
type Profile string

const (
	ProfileDev  Profile = "dev"
	ProfileProd Profile = "prod"
)

// ParseProfile maps a raw profile string onto a known profile.
// Anything other than "prod"/"production" resolves to dev.
func ParseProfile(raw string) Profile {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "prod", "production":
		return ProfileProd
	default:
		return ProfileDev
	}
}

// Config is the resolved environment configuration.
type Config struct {
	APIBaseURL     string
	StreamBaseURL  string // optional; StreamEndpoint falls back to APIBaseURL
	DefaultTenant  string
	DefaultSession string
	AuthToken      string
	Profile        Profile
	SSETimeout     time.Duration
	RequestTimeout time.Duration
}

// FromEnv resolves the configuration from the process environment.
// A .env file in the current directory is honoured when present
// (LoadDotenv); variables already set in the environment always win.
func FromEnv() Config {
	LoadDotenv()

	cfg := Config{
		APIBaseURL:     ParseString(EnvAPIBaseURL, DefaultAPIBaseURL),
		StreamBaseURL:  ParseString(EnvStreamBaseURL, ""),
		DefaultTenant:  ParseString(EnvDefaultTenant, DefaultTenant),
		DefaultSession: ParseString(EnvDefaultSession, DefaultSession),
		AuthToken:      ParseString(EnvAuthToken, DefaultAuthToken),
		Profile:        ParseProfile(ParseString(EnvProfile, "")),
		SSETimeout:     time.Duration(ParseInt(EnvSSETimeoutMS, int(defaultSSETimeout/time.Millisecond))) * time.Millisecond,
		RequestTimeout: time.Duration(ParseInt(EnvRequestTimeoutSecs, int(defaultRequestTimeout/time.Second))) * time.Second,
	}

	if cfg.SSETimeout < minSSETimeout {
		cfg.SSETimeout = minSSETimeout
	}
	if cfg.RequestTimeout < minRequestTimeout {
		cfg.RequestTimeout = minRequestTimeout
	}
	return cfg
}

// BearerToken returns the Authorization header value for the configured
// token, or "" when no token is configured.
func (c Config) BearerToken() string {
	token := strings.TrimSpace(c.AuthToken)
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

// TenantHeader returns the tenant to send with a request: the override when
// non-empty, otherwise the configured default tenant.
func (c Config) TenantHeader(override string) string {
	if override != "" {
		return override
	}
	return c.DefaultTenant
}

// StreamEndpoint returns the base URL for SSE streams, falling back to the
// API base URL when no dedicated stream base is configured.
func (c Config) StreamEndpoint() string {
	if c.StreamBaseURL != "" {
		return c.StreamBaseURL
	}
	return c.APIBaseURL
}

// LaunchEnv returns the four launcher variables with resolved values, in
// KEY=VALUE form, for export into the dev-server child environment.
func (c Config) LaunchEnv() []string {
	return []string{
		EnvAPIBaseURL + "=" + c.APIBaseURL,
		EnvDefaultTenant + "=" + c.DefaultTenant,
		EnvDefaultSession + "=" + c.DefaultSession,
		EnvAuthToken + "=" + c.AuthToken,
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/soulseed/consolectl/internal/config"
)

func runEnv(args []string) int {
	fs := flag.NewFlagSet("consolectl env", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var format string
	fs.StringVar(&format, "format", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.FromEnv()

	switch format {
	case "text":
		fmt.Printf("%s=%s\n", config.EnvAPIBaseURL, cfg.APIBaseURL)
		fmt.Printf("%s=%s\n", config.EnvStreamBaseURL, cfg.StreamEndpoint())
		fmt.Printf("%s=%s\n", config.EnvDefaultTenant, cfg.DefaultTenant)
		fmt.Printf("%s=%s\n", config.EnvDefaultSession, cfg.DefaultSession)
		fmt.Printf("%s=%s\n", config.EnvAuthToken, maskToken(cfg.AuthToken))
		fmt.Printf("%s=%s\n", config.EnvProfile, cfg.Profile)
		fmt.Printf("%s=%d\n", config.EnvSSETimeoutMS, cfg.SSETimeout.Milliseconds())
		fmt.Printf("%s=%d\n", config.EnvRequestTimeoutSecs, int(cfg.RequestTimeout.Seconds()))
	case "json":
		out := map[string]any{
			"api_base_url":         cfg.APIBaseURL,
			"stream_base_url":      cfg.StreamEndpoint(),
			"default_tenant":       cfg.DefaultTenant,
			"default_session":      cfg.DefaultSession,
			"auth_token":           maskToken(cfg.AuthToken),
			"profile":              string(cfg.Profile),
			"sse_timeout_ms":       cfg.SSETimeout.Milliseconds(),
			"request_timeout_secs": int(cfg.RequestTimeout.Seconds()),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", format)
		return 2
	}
	return 0
}

// maskToken hides all but a short prefix of the token so env output is safe
// to paste into bug reports.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}

// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/soulseed/consolectl/internal/config"
	"github.com/soulseed/consolectl/internal/sse"
	"github.com/soulseed/consolectl/internal/thinwaist"
)

type tailLine struct {
	Event string          `json:"event"`
	ID    string          `json:"id,omitempty"`
	Data  json.RawMessage `json:"data"`
}

func runTail(args []string) int {
	fs := flag.NewFlagSet("consolectl tail", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var session, cycle, tenant string
	fs.StringVar(&session, "session", "", "session id to tail (default: SOULSEED_DEFAULT_SESSION)")
	fs.StringVar(&cycle, "cycle", "", "ACE cycle id to tail instead of a session")
	fs.StringVar(&tenant, "tenant", "", "tenant override (default: SOULSEED_DEFAULT_TENANT)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if session != "" && cycle != "" {
		fmt.Fprintln(os.Stderr, "Error: --session and --cycle are mutually exclusive")
		return 2
	}

	cfg := config.FromEnv()
	client := thinwaist.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	newRequest := func(ctx context.Context) (*http.Request, error) {
		if cycle != "" {
			return client.CycleStreamRequest(ctx, tenant, cycle)
		}
		target := session
		if target == "" {
			target = cfg.DefaultSession
		}
		return client.LiveDialogueRequest(ctx, cfg.TenantHeader(tenant), target)
	}

	events := sse.Connect(ctx, client.StreamClient(), newRequest, sse.Options{
		HeartbeatTimeout: cfg.SSETimeout,
	})

	enc := json.NewEncoder(os.Stdout)
	for evt := range events {
		if evt.Type == sse.EventPing {
			continue
		}
		line := tailLine{Event: evt.Type, ID: evt.ID, Data: rawOrString(evt.Data)}
		if err := enc.Encode(line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// rawOrString passes JSON payloads through verbatim and quotes anything else.
func rawOrString(data string) json.RawMessage {
	if json.Valid([]byte(data)) {
		return json.RawMessage(data)
	}
	quoted, _ := json.Marshal(data)
	return quoted
}

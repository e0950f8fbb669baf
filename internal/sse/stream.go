// SPDX-License-Identifier: MIT

package sse

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/soulseed/consolectl/internal/log"
)

// Options tune stream supervision. Zero values resolve to the defaults.
type Options struct {
	HeartbeatTimeout time.Duration // reconnect when no event arrives for this long
	RetryBase        time.Duration // initial reconnect backoff
	RetryMax         time.Duration // backoff cap
}

const (
	defaultHeartbeatTimeout = 30 * time.Second
	defaultRetryBase        = time.Second
	defaultRetryMax         = 10 * time.Second

	minHeartbeatTimeout = 5 * time.Second
	minRetryBase        = 500 * time.Millisecond
	minRetryMax         = time.Second
)

func (o Options) resolved() Options {
	if o.HeartbeatTimeout == 0 {
		o.HeartbeatTimeout = defaultHeartbeatTimeout
	}
	if o.RetryBase == 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.RetryMax == 0 {
		o.RetryMax = defaultRetryMax
	}
	if o.HeartbeatTimeout < minHeartbeatTimeout {
		o.HeartbeatTimeout = minHeartbeatTimeout
	}
	if o.RetryBase < minRetryBase {
		o.RetryBase = minRetryBase
	}
	if o.RetryMax < minRetryMax {
		o.RetryMax = minRetryMax
	}
	return o
}

// RequestFactory builds a fresh stream request for each connection attempt.
type RequestFactory func(ctx context.Context) (*http.Request, error)

// Connect consumes an SSE stream until ctx is cancelled, delivering events
// on the returned channel. Connection loss, heartbeat expiry and non-2xx
// responses trigger reconnects with exponential backoff; a successful open
// resets the backoff. The channel is closed when ctx ends.
func Connect(ctx context.Context, client *http.Client, newRequest RequestFactory, opts Options) <-chan Event {
	opts = opts.resolved()
	events := make(chan Event)

	go func() {
		defer close(events)
		logger := log.WithComponent("sse")
		backoff := opts.RetryBase

		for {
			opened, err := consume(ctx, client, newRequest, opts, events)
			if ctx.Err() != nil {
				return
			}
			if opened {
				backoff = opts.RetryBase
			}
			if err != nil {
				logger.Warn().
					Err(err).
					Dur("backoff", backoff).
					Msg("stream interrupted, reconnecting")
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > opts.RetryMax {
				backoff = opts.RetryMax
			}
		}
	}()

	return events
}

// consume runs a single connection: it opens the stream, supervises the
// heartbeat, and forwards events. opened reports whether the server
// accepted the stream, which resets the caller's backoff.
func consume(ctx context.Context, client *http.Client, newRequest RequestFactory, opts Options, events chan<- Event) (opened bool, err error) {
	req, err := newRequest(ctx)
	if err != nil {
		return false, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, errors.New("stream rejected: " + resp.Status)
	}

	// The watchdog force-closes the body when no event (including pings)
	// arrives within the heartbeat timeout, failing the blocked read below.
	watchdog := time.AfterFunc(opts.HeartbeatTimeout, func() { resp.Body.Close() })
	defer watchdog.Stop()

	parser := NewParser(resp.Body)
	for {
		evt, err := parser.Next()
		if err != nil {
			if err == io.EOF {
				return true, nil
			}
			return true, err
		}
		watchdog.Reset(opts.HeartbeatTimeout)

		select {
		case events <- evt:
		case <-ctx.Done():
			return true, nil
		}
	}
}

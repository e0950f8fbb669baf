// SPDX-License-Identifier: MIT

package sse

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestOptionsResolved(t *testing.T) {
	opts := Options{}.resolved()
	assert.Equal(t, 30*time.Second, opts.HeartbeatTimeout)
	assert.Equal(t, time.Second, opts.RetryBase)
	assert.Equal(t, 10*time.Second, opts.RetryMax)

	floored := Options{
		HeartbeatTimeout: time.Second,
		RetryBase:        time.Millisecond,
		RetryMax:         time.Millisecond,
	}.resolved()
	assert.Equal(t, 5*time.Second, floored.HeartbeatTimeout)
	assert.Equal(t, 500*time.Millisecond, floored.RetryBase)
	assert.Equal(t, time.Second, floored.RetryMax)
}

func TestConnectDeliversEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: dialogue_event\ndata: first\n\n")
		fmt.Fprint(w, "data: second\n\n")
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	newReq := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	}

	events := Connect(ctx, srv.Client(), newReq, Options{})

	first := <-events
	assert.Equal(t, EventDialogue, first.Type)
	assert.Equal(t, "first", first.Data)

	second := <-events
	assert.Equal(t, "message", second.Type)
	assert.Equal(t, "second", second.Data)

	cancel()
	// Channel closes once the consumer observes cancellation.
	for range events {
	}
}

func TestConnectReconnectsAfterStreamEnd(t *testing.T) {
	var connections atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := connections.Add(1)
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprintf(w, "data: conn-%d\n\n", n)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	newReq := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	}

	events := Connect(ctx, srv.Client(), newReq, Options{})

	assert.Equal(t, "conn-1", (<-events).Data)
	// The server closed the stream; the consumer must reconnect on its own.
	assert.Equal(t, "conn-2", (<-events).Data)
	require.GreaterOrEqual(t, connections.Load(), int32(2))

	cancel()
	for range events {
	}
}

func TestConnectReconnectsOnHeartbeatExpiry(t *testing.T) {
	var connections atomic.Int32
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := connections.Add(1)
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprintf(w, "data: conn-%d\n\n", n)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		if n == 1 {
			// Go silent without closing: no events, no EOF. Only the
			// heartbeat watchdog can sever this connection.
			select {
			case <-block:
			case <-r.Context().Done():
			}
		}
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	newReq := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	}

	// Minimum permitted heartbeat timeout, to keep the test short.
	events := Connect(ctx, srv.Client(), newReq, Options{HeartbeatTimeout: 5 * time.Second})

	assert.Equal(t, "conn-1", (<-events).Data)
	// The first connection stays open but silent; a second connection
	// proves the watchdog cut it and the consumer reconnected.
	assert.Equal(t, "conn-2", (<-events).Data)
	require.GreaterOrEqual(t, connections.Load(), int32(2))

	cancel()
	for range events {
	}
}

func TestConnectChannelClosesOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	newReq := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	}

	events := Connect(ctx, srv.Client(), newReq, Options{})
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should close without delivering events")
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close after cancellation")
	}
}

func TestConnectNoGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: one\n\n")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	newReq := func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	}

	client := srv.Client()
	events := Connect(ctx, client, newReq, Options{})
	<-events

	cancel()
	// The supervision goroutine closes the channel on its way out.
	for range events {
	}
	client.CloseIdleConnections()
}

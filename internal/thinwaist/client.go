// SPDX-License-Identifier: MIT

// Package thinwaist is the HTTP client for the soulseed Thin-Waist API.
// Every request carries the configured bearer token, a tenant header and a
// generated request id; responses arrive in a uniform envelope.
package thinwaist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soulseed/consolectl/internal/config"
	"github.com/soulseed/consolectl/internal/log"
)

const (
	headerTenant    = "X-Tenant-Id"
	headerRequestID = "X-Request-Id"
)

// Client talks to the Thin-Waist API.
type Client struct {
	base    string
	streams string
	cfg     config.Config
	http    *http.Client
}

// New builds a client from the resolved configuration.
func New(cfg config.Config) *Client {
	return &Client{
		base:    strings.TrimRight(cfg.APIBaseURL, "/"),
		streams: strings.TrimRight(cfg.StreamEndpoint(), "/"),
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// Config returns the configuration the client was built with.
func (c *Client) Config() config.Config {
	return c.cfg
}

// newRequest builds a request against the API base URL with the standard
// headers applied. path must be relative to the base.
func (c *Client) newRequest(ctx context.Context, method, path, tenantOverride string, query url.Values, body any) (*http.Request, error) {
	target := c.base + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.applyHeaders(req, tenantOverride)
	return req, nil
}

func (c *Client) applyHeaders(req *http.Request, tenantOverride string) {
	if token := c.cfg.BearerToken(); token != "" {
		req.Header.Set("Authorization", token)
	}
	if tenant := c.cfg.TenantHeader(tenantOverride); tenant != "" {
		req.Header.Set(headerTenant, tenant)
	}
	requestID := log.RequestIDFromContext(req.Context())
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(headerRequestID, requestID)
}

// do executes a request and decodes the enveloped response. Envelope
// metadata (trace id, duration) is logged at debug level.
func do[T any](ctx context.Context, c *Client, op, method, path, tenantOverride string, query url.Values, body any) (*T, error) {
	req, err := c.newRequest(ctx, method, path, tenantOverride, query, body)
	if err != nil {
		return nil, &APIError{Sentinel: ErrBadResponse, Operation: op, Err: err}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	observeRequest(op, start, resp, err)
	if err != nil {
		sentinel := ErrUnavailable
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			sentinel = ErrTimeout
		}
		return nil, &APIError{Sentinel: sentinel, Operation: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, &APIError{Sentinel: ErrUnavailable, Operation: op, Status: resp.StatusCode, Err: err}
	}
	if len(raw) == 0 {
		return nil, &APIError{Sentinel: ErrEmptyResponse, Operation: op, Status: resp.StatusCode}
	}

	var envelope Envelope[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &APIError{Sentinel: ErrBadResponse, Operation: op, Status: resp.StatusCode, Err: err}
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	if success && envelope.Success {
		logEnvelope(ctx, op, &envelope)
		return envelope.Data, nil
	}

	apiErr := &APIError{Sentinel: sentinelForStatus(resp.StatusCode), Operation: op, Status: resp.StatusCode}
	if envelope.Error != nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	} else {
		apiErr.Sentinel = ErrBadResponse
	}
	return nil, apiErr
}

func logEnvelope[T any](ctx context.Context, op string, envelope *Envelope[T]) {
	logger := log.FromContext(ctx)
	evt := logger.Debug().
		Str(log.FieldComponent, "thinwaist").
		Str(log.FieldOperation, op)
	if envelope.TraceID != "" {
		evt = evt.Str(log.FieldTraceID, envelope.TraceID)
	}
	if envelope.DurationMS != nil {
		evt = evt.Uint64("duration_ms", *envelope.DurationMS)
	}
	evt.Msg("request completed")
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// SPDX-License-Identifier: MIT

package thinwaist

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// LiveDialogueRequest builds the SSE request for a session's live dialogue
// stream. Stream requests go to the stream endpoint, which may differ from
// the API base.
func (c *Client) LiveDialogueRequest(ctx context.Context, tenantID, sessionID string) (*http.Request, error) {
	path := "tenants/" + url.PathEscape(tenantID) + "/live/dialogues/" + url.PathEscape(sessionID)
	return c.streamRequest(ctx, path, tenantID)
}

// CycleStreamRequest builds the SSE request for an ACE cycle stream.
func (c *Client) CycleStreamRequest(ctx context.Context, tenantOverride, cycleID string) (*http.Request, error) {
	path := "ace/cycles/" + url.PathEscape(cycleID) + "/stream"
	return c.streamRequest(ctx, path, tenantOverride)
}

func (c *Client) streamRequest(ctx context.Context, path, tenantOverride string) (*http.Request, error) {
	target := c.streams + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	c.applyHeaders(req, tenantOverride)
	return req, nil
}

// StreamClient returns an HTTP client suitable for long-lived SSE
// connections: no overall request timeout, which would sever the stream.
func (c *Client) StreamClient() *http.Client {
	return &http.Client{}
}

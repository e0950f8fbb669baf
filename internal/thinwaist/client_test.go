// SPDX-License-Identifier: MIT

package thinwaist

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulseed/consolectl/internal/config"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		APIBaseURL:     baseURL,
		DefaultTenant:  "1",
		DefaultSession: "123",
		AuthToken:      "token",
		RequestTimeout: 5 * time.Second,
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	c := New(testConfig("http://example.test/api/v1/"))
	assert.Equal(t, "http://example.test/api/v1", c.base)
}

func TestRequestCarriesStandardHeaders(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.Respond("GET", "/tenants/1/explain/indices", ExplainIndices{})

	c := New(testConfig(mock.URL))
	_, err := c.ExplainIndices(context.Background(), "1")
	require.NoError(t, err)

	req := mock.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, "Bearer token", req.Header.Get("Authorization"))
	assert.Equal(t, "1", req.Header.Get("X-Tenant-Id"))
	assert.NotEmpty(t, req.Header.Get("X-Request-Id"))
}

func TestTenantOverrideWinsOverDefault(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.Respond("GET", "/tenants/42/explain/indices", ExplainIndices{})

	c := New(testConfig(mock.URL))
	_, err := c.ExplainIndices(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, "42", mock.LastRequest().Header.Get("X-Tenant-Id"))
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.Respond("GET", "/tenants/1/explain/indices", ExplainIndices{})

	cfg := testConfig(mock.URL)
	cfg.AuthToken = ""
	c := New(cfg)
	_, err := c.ExplainIndices(context.Background(), "1")
	require.NoError(t, err)

	assert.Empty(t, mock.LastRequest().Header.Get("Authorization"))
}

func TestTimelineDecodesPayload(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	cursor := "abc"
	mock.Respond("GET", "/tenants/1/graph/timeline", TimelinePayload{NextCursor: &cursor})

	c := New(testConfig(mock.URL))
	query := url.Values{"limit": {"20"}}
	page, err := c.Timeline(context.Background(), "1", query)
	require.NoError(t, err)
	require.NotNil(t, page)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "abc", *page.NextCursor)

	assert.Equal(t, "limit=20", mock.LastRequest().URL.RawQuery)
}

func TestRecallDecodesList(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.Respond("GET", "/tenants/1/graph/recall", []RecallResult{
		{EventID: 9, Score: 0.91},
	})

	c := New(testConfig(mock.URL))
	results, err := c.Recall(context.Background(), "1", url.Values{"q": {"deploy"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, uint64(9), results[0].EventID)
}

func TestTriggerDialogueDecodesCycleID(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	// cycle_id arrives as a JSON number from some backends.
	mock.RespondRaw("POST", "/triggers/dialogue", 200,
		[]byte(`{"success":true,"data":{"cycle_id":981,"status":"pending"}}`))

	c := New(testConfig(mock.URL))
	resp, err := c.TriggerDialogue(context.Background(), "", map[string]any{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, FlexID("981"), resp.CycleID)
	assert.Equal(t, "pending", resp.Status)
}

func TestEnvelopeErrorSurfacesCodeAndMessage(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.RespondError("GET", "/tenants/1/context/bundle", 404, "bundle_missing", "no bundle for session")

	c := New(testConfig(mock.URL))
	_, err := c.ContextBundle(context.Background(), "1", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "bundle_missing", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "no bundle for session")
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.RespondError("GET", "/tenants/1/explain/indices", 401, "unauthorized", "bad token")

	c := New(testConfig(mock.URL))
	_, err := c.ExplainIndices(context.Background(), "1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestServerErrorMapsToUnavailable(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.RespondError("GET", "/tenants/1/explain/indices", 503, "overloaded", "try later")

	c := New(testConfig(mock.URL))
	_, err := c.ExplainIndices(context.Background(), "1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEmptyBodyIsAnError(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.RespondRaw("GET", "/tenants/1/explain/indices", 200, nil)

	c := New(testConfig(mock.URL))
	_, err := c.ExplainIndices(context.Background(), "1")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestMalformedBodyIsBadResponse(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.RespondRaw("GET", "/tenants/1/explain/indices", 200, []byte("<html>"))

	c := New(testConfig(mock.URL))
	_, err := c.ExplainIndices(context.Background(), "1")
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestNon2xxWithoutEnvelopeErrorIsBadResponse(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.RespondRaw("GET", "/tenants/1/explain/indices", 500, []byte(`{"success":false,"data":null}`))

	c := New(testConfig(mock.URL))
	_, err := c.ExplainIndices(context.Background(), "1")
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestTransportErrorMapsToUnavailable(t *testing.T) {
	// Closed server: connection refused.
	mock := NewMockServer()
	mock.Close()

	c := New(testConfig(mock.URL))
	_, err := c.ExplainIndices(context.Background(), "1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPostBodySetsContentType(t *testing.T) {
	mock := NewMockServer()
	defer mock.Close()
	mock.Respond("POST", "/tenants/1/dialogue-events", map[string]any{"id": "e1"})

	c := New(testConfig(mock.URL))
	_, err := c.PostDialogueEvent(context.Background(), "1", map[string]any{"text": "hello"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", mock.LastRequest().Header.Get("Content-Type"))
}

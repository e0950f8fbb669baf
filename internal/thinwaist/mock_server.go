// SPDX-License-Identifier: MIT

package thinwaist

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockServer is a configurable Thin-Waist mock for client tests. Handlers
// answer with the standard envelope; responses can be overridden per path.
type MockServer struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]mockResponse // keyed by METHOD /path
	requests  []*http.Request
}

type mockResponse struct {
	status int
	body   []byte
}

// NewMockServer starts a mock that replies to every request with a success
// envelope wrapping the data registered for it, or 404 when nothing is.
func NewMockServer() *MockServer {
	mock := &MockServer{responses: make(map[string]mockResponse)}
	mock.Server = httptest.NewServer(http.HandlerFunc(mock.handle))
	return mock
}

// Respond registers a success envelope for METHOD path with the given data.
func (m *MockServer) Respond(method, path string, data any) {
	payload, err := json.Marshal(map[string]any{
		"success":     true,
		"data":        data,
		"trace_id":    "trace-test",
		"duration_ms": 3,
	})
	if err != nil {
		panic(err)
	}
	m.set(method, path, http.StatusOK, payload)
}

// RespondError registers an error envelope for METHOD path.
func (m *MockServer) RespondError(method, path string, status int, code, message string) {
	payload, _ := json.Marshal(map[string]any{
		"success": false,
		"data":    nil,
		"error":   map[string]any{"code": code, "message": message},
	})
	m.set(method, path, status, payload)
}

// RespondRaw registers a verbatim body for METHOD path.
func (m *MockServer) RespondRaw(method, path string, status int, body []byte) {
	m.set(method, path, status, body)
}

func (m *MockServer) set(method, path string, status int, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[method+" "+path] = mockResponse{status: status, body: body}
}

// Requests returns a copy of every request the mock has received.
func (m *MockServer) Requests() []*http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*http.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or nil.
func (m *MockServer) LastRequest() *http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

func (m *MockServer) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requests = append(m.requests, r.Clone(r.Context()))
	resp, ok := m.responses[r.Method+" "+r.URL.Path]
	m.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"data":null,"error":{"code":"not_found","message":"no such resource"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

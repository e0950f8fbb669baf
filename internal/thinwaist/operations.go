// SPDX-License-Identifier: MIT

package thinwaist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// PostDialogueEvent submits a dialogue event for a tenant. The response
// payload shape depends on the event kind, so it stays raw.
func (c *Client) PostDialogueEvent(ctx context.Context, tenantID string, payload any) (*json.RawMessage, error) {
	return do[json.RawMessage](ctx, c, "post_dialogue_event", http.MethodPost,
		"tenants/"+url.PathEscape(tenantID)+"/dialogue-events", tenantID, nil, payload)
}

// DialogueEvent fetches a single dialogue event by id.
func (c *Client) DialogueEvent(ctx context.Context, tenantID, eventID string) (*json.RawMessage, error) {
	return do[json.RawMessage](ctx, c, "get_dialogue_event", http.MethodGet,
		"tenants/"+url.PathEscape(tenantID)+"/dialogue-events/"+url.PathEscape(eventID), tenantID, nil, nil)
}

// Timeline fetches a page of the session timeline.
func (c *Client) Timeline(ctx context.Context, tenantID string, query url.Values) (*TimelinePayload, error) {
	return do[TimelinePayload](ctx, c, "get_timeline", http.MethodGet,
		"tenants/"+url.PathEscape(tenantID)+"/graph/timeline", tenantID, query, nil)
}

// CausalGraph fetches the causal neighbourhood of an event.
func (c *Client) CausalGraph(ctx context.Context, tenantID string, query url.Values) (*CausalGraph, error) {
	return do[CausalGraph](ctx, c, "get_causal_graph", http.MethodGet,
		"tenants/"+url.PathEscape(tenantID)+"/graph/causal", tenantID, query, nil)
}

// Recall runs a recall query over the event graph.
func (c *Client) Recall(ctx context.Context, tenantID string, query url.Values) ([]RecallResult, error) {
	results, err := do[[]RecallResult](ctx, c, "get_recall", http.MethodGet,
		"tenants/"+url.PathEscape(tenantID)+"/graph/recall", tenantID, query, nil)
	if err != nil {
		return nil, err
	}
	if results == nil {
		return nil, nil
	}
	return *results, nil
}

// ContextBundle fetches the assembled context bundle for a session.
func (c *Client) ContextBundle(ctx context.Context, tenantID string, query url.Values) (*ContextBundle, error) {
	return do[ContextBundle](ctx, c, "get_context_bundle", http.MethodGet,
		"tenants/"+url.PathEscape(tenantID)+"/context/bundle", tenantID, query, nil)
}

// CompactContext requests a manifest compaction.
func (c *Client) CompactContext(ctx context.Context, tenantID string, payload any) (*json.RawMessage, error) {
	return do[json.RawMessage](ctx, c, "post_context_compact", http.MethodPost,
		"tenants/"+url.PathEscape(tenantID)+"/context/manifest/compact", tenantID, nil, payload)
}

// TriggerDialogue schedules a dialogue cycle. tenantOverride may be empty,
// in which case the configured default tenant applies.
func (c *Client) TriggerDialogue(ctx context.Context, tenantOverride string, payload any) (*CycleTriggerResponse, error) {
	return do[CycleTriggerResponse](ctx, c, "post_trigger_dialogue", http.MethodPost,
		"triggers/dialogue", tenantOverride, nil, payload)
}

// CycleSnapshot fetches the full state of an ACE cycle.
func (c *Client) CycleSnapshot(ctx context.Context, tenantOverride, cycleID string) (*CycleSnapshot, error) {
	return do[CycleSnapshot](ctx, c, "get_cycle_snapshot", http.MethodGet,
		"ace/cycles/"+url.PathEscape(cycleID), tenantOverride, nil, nil)
}

// CycleOutbox fetches the outbox of an ACE cycle.
func (c *Client) CycleOutbox(ctx context.Context, tenantOverride, cycleID string) ([]OutboxMessage, error) {
	messages, err := do[[]OutboxMessage](ctx, c, "get_cycle_outbox", http.MethodGet,
		"ace/cycles/"+url.PathEscape(cycleID)+"/outbox", tenantOverride, nil, nil)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		return nil, nil
	}
	return *messages, nil
}

// PostCycleInjection submits a human-in-the-loop injection.
func (c *Client) PostCycleInjection(ctx context.Context, tenantOverride string, payload any) (*HitlInjection, error) {
	return do[HitlInjection](ctx, c, "post_cycle_injection", http.MethodPost,
		"ace/injections", tenantOverride, nil, payload)
}

// AwarenessEvents fetches awareness events for a tenant.
func (c *Client) AwarenessEvents(ctx context.Context, tenantID string, query url.Values) ([]json.RawMessage, error) {
	events, err := do[[]json.RawMessage](ctx, c, "get_awareness_events", http.MethodGet,
		"tenants/"+url.PathEscape(tenantID)+"/awareness/events", tenantID, query, nil)
	if err != nil {
		return nil, err
	}
	if events == nil {
		return nil, nil
	}
	return *events, nil
}

// ExplainIndices fetches the per-subsystem index-usage diagnostics.
func (c *Client) ExplainIndices(ctx context.Context, tenantID string) (*ExplainIndices, error) {
	return do[ExplainIndices](ctx, c, "get_explain_indices", http.MethodGet,
		"tenants/"+url.PathEscape(tenantID)+"/explain/indices", tenantID, nil, nil)
}

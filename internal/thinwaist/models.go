// SPDX-License-Identifier: MIT

package thinwaist

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexID is an identifier the API serializes as either a JSON string or a
// number; it always unmarshals to its string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*f = FlexID(v)
	case json.Number:
		*f = FlexID(v.String())
	default:
		return fmt.Errorf("flex id: expected string or number, got %T", raw)
	}
	return nil
}

// TimelinePayload is a page of the session timeline.
type TimelinePayload struct {
	Items      []json.RawMessage `json:"items"`
	Awareness  []json.RawMessage `json:"awareness,omitempty"`
	NextCursor *string           `json:"next_cursor,omitempty"`
}

// AceBudget reports resource spend within an ACE cycle.
type AceBudget struct {
	TokensAllowed     *uint32 `json:"tokens_allowed,omitempty"`
	TokensSpent       *uint32 `json:"tokens_spent,omitempty"`
	WalltimeMSAllowed *uint64 `json:"walltime_ms_allowed,omitempty"`
	WalltimeMSUsed    *uint64 `json:"walltime_ms_used,omitempty"`
}

// HitlInjection is a pending human-in-the-loop injection on a cycle.
type HitlInjection struct {
	InjectionID FlexID          `json:"injection_id"`
	CycleID     FlexID          `json:"cycle_id"`
	Priority    string          `json:"priority"`
	AuthorRole  string          `json:"author_role"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Status      *string         `json:"status,omitempty"`
}

// AceCycleSummary is the condensed view of an ACE cycle.
type AceCycleSummary struct {
	CycleID           FlexID          `json:"cycle_id"`
	Lane              string          `json:"lane"`
	Status            string          `json:"status"`
	Anchor            json.RawMessage `json:"anchor,omitempty"`
	Budget            *AceBudget      `json:"budget,omitempty"`
	LatestSyncPoint   json.RawMessage `json:"latest_sync_point,omitempty"`
	PendingInjections []HitlInjection `json:"pending_injections,omitempty"`
	DecisionPath      json.RawMessage `json:"decision_path,omitempty"`
	Metadata          json.RawMessage `json:"metadata,omitempty"`
}

// CycleOutcomeSummary reports a finished cycle outcome.
type CycleOutcomeSummary struct {
	CycleID        FlexID  `json:"cycle_id"`
	Status         string  `json:"status"`
	ManifestDigest *string `json:"manifest_digest,omitempty"`
}

// CycleTriggerResponse is returned when a dialogue trigger schedules a cycle.
type CycleTriggerResponse struct {
	CycleID        FlexID  `json:"cycle_id"`
	Status         string  `json:"status"`
	ManifestDigest *string `json:"manifest_digest,omitempty"`
}

// OutboxMessage is a message queued on a cycle's outbox.
type OutboxMessage struct {
	CycleID FlexID          `json:"cycle_id"`
	EventID FlexID          `json:"event_id"`
	Payload json.RawMessage `json:"payload"`
}

// CycleSnapshot is the full state of an ACE cycle. Schedule and sync point
// carry backend-internal identifier types, so they stay raw.
type CycleSnapshot struct {
	Schedule  json.RawMessage       `json:"schedule"`
	SyncPoint json.RawMessage       `json:"sync_point"`
	Outcomes  []CycleOutcomeSummary `json:"outcomes,omitempty"`
	Outbox    []OutboxMessage       `json:"outbox,omitempty"`
}

// ContextAnchor locates a context bundle.
type ContextAnchor struct {
	TenantID              int64           `json:"tenant_id"`
	EnvelopeID            string          `json:"envelope_id"`
	ConfigSnapshotHash    string          `json:"config_snapshot_hash"`
	ConfigSnapshotVersion uint32          `json:"config_snapshot_version"`
	SessionID             *int64          `json:"session_id,omitempty"`
	SequenceNumber        *uint64         `json:"sequence_number,omitempty"`
	AccessClass           *string         `json:"access_class,omitempty"`
	Provenance            json.RawMessage `json:"provenance,omitempty"`
	SchemaV               uint16          `json:"schema_v"`
	Scenario              *string         `json:"scenario,omitempty"`
}

// BundleItem is a single context item within a bundle segment.
type BundleItem struct {
	CIID         string  `json:"ci_id"`
	SummaryLevel *string `json:"summary_level,omitempty"`
	Tokens       uint32  `json:"tokens"`
}

// BundleSegment groups bundle items by partition.
type BundleSegment struct {
	Partition string       `json:"partition"`
	Items     []BundleItem `json:"items"`
}

// ExplainBundle carries assembly diagnostics for a bundle.
type ExplainBundle struct {
	Reasons           []string `json:"reasons,omitempty"`
	DegradationReason *string  `json:"degradation_reason,omitempty"`
	IndicesUsed       []string `json:"indices_used,omitempty"`
	QueryHash         *string  `json:"query_hash,omitempty"`
}

// BundleBudget reports token budgeting for a bundle.
type BundleBudget struct {
	TargetTokens    uint32 `json:"target_tokens"`
	ProjectedTokens uint32 `json:"projected_tokens"`
}

// ContextBundle is the assembled context for a session.
type ContextBundle struct {
	Anchor            ContextAnchor   `json:"anchor"`
	Segments          []BundleSegment `json:"segments"`
	Explain           ExplainBundle   `json:"explain"`
	Budget            *BundleBudget   `json:"budget,omitempty"`
	ManifestDigest    *string         `json:"manifest_digest,omitempty"`
	Version           *uint32         `json:"version,omitempty"`
	WorkingGeneration *uint32         `json:"working_generation,omitempty"`
	DegradationReason *string         `json:"degradation_reason,omitempty"`
}

// CausalGraphNode is a node in the causal event graph.
type CausalGraphNode struct {
	EventID     uint64   `json:"event_id"`
	EventType   *string  `json:"event_type,omitempty"`
	Scenario    *string  `json:"scenario,omitempty"`
	Label       *string  `json:"label,omitempty"`
	Summary     *string  `json:"summary,omitempty"`
	TimestampMS *int64   `json:"timestamp_ms,omitempty"`
	Depth       *int32   `json:"depth,omitempty"`
	Score       *float32 `json:"score,omitempty"`
}

// CausalGraphEdge links two events in the causal graph.
type CausalGraphEdge struct {
	From     uint64  `json:"from"`
	To       uint64  `json:"to"`
	Relation *string `json:"relation,omitempty"`
}

// CausalGraph is the causal neighbourhood of a root event.
type CausalGraph struct {
	RootEventID uint64            `json:"root_event_id"`
	Nodes       []CausalGraphNode `json:"nodes"`
	Edges       []CausalGraphEdge `json:"edges"`
}

// RecallResult is a scored recall hit.
type RecallResult struct {
	EventID uint64  `json:"event_id"`
	Score   float32 `json:"score"`
	Label   *string `json:"label,omitempty"`
	Snippet *string `json:"snippet,omitempty"`
	Reason  *string `json:"reason,omitempty"`
}

// ExplainSection describes index usage for one subsystem.
type ExplainSection struct {
	IndicesUsed       []string `json:"indices_used,omitempty"`
	QueryHash         *string  `json:"query_hash,omitempty"`
	DegradationReason *string  `json:"degradation_reason,omitempty"`
}

// DfrExplainSection describes router diagnostics.
type DfrExplainSection struct {
	RouterDigest      *string `json:"router_digest,omitempty"`
	DegradationReason *string `json:"degradation_reason,omitempty"`
}

// AceExplainSection describes ACE diagnostics.
type AceExplainSection struct {
	SyncPoint         json.RawMessage `json:"sync_point,omitempty"`
	DegradationReason *string         `json:"degradation_reason,omitempty"`
}

// ExplainIndices aggregates per-subsystem explain sections.
type ExplainIndices struct {
	Graph   ExplainSection    `json:"graph"`
	Context ExplainSection    `json:"context"`
	Dfr     DfrExplainSection `json:"dfr"`
	Ace     AceExplainSection `json:"ace"`
}

// WorkspaceSession is a session listed in a tenant workspace.
type WorkspaceSession struct {
	SessionID    string  `json:"session_id"`
	Title        *string `json:"title,omitempty"`
	Scenario     *string `json:"scenario,omitempty"`
	LastActiveMS *int64  `json:"last_active_ms,omitempty"`
	Pinned       bool    `json:"pinned"`
	Summary      *string `json:"summary,omitempty"`
}

// TenantWorkspace is the tenant-level workspace view.
type TenantWorkspace struct {
	TenantID       string             `json:"tenant_id"`
	DisplayName    string             `json:"display_name"`
	Description    *string            `json:"description,omitempty"`
	ManifestLevel  *string            `json:"manifest_level,omitempty"`
	PinnedSessions []WorkspaceSession `json:"pinned_sessions,omitempty"`
	RecentSessions []WorkspaceSession `json:"recent_sessions,omitempty"`
}

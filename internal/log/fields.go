// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldTenantID  = "tenant_id"
	FieldSessionID = "session_id"
	FieldCycleID   = "cycle_id"
	FieldRequestID = "request_id"
	FieldTraceID   = "trace_id"

	// Process / pipeline fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldOperation = "operation"

	// Path / URL fields
	FieldPath    = "path"
	FieldBaseURL = "base_url"

	// Config fields
	FieldKey    = "key"
	FieldSource = "source"
)

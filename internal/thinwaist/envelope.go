// SPDX-License-Identifier: MIT

package thinwaist

import (
	"encoding/json"
	"fmt"
)

// Envelope is the uniform Thin-Waist response wrapper.
type Envelope[T any] struct {
	Success    bool       `json:"success"`
	Data       *T         `json:"data"`
	Error      *ErrorBody `json:"error"`
	TraceID    string     `json:"trace_id,omitempty"`
	DurationMS *uint64    `json:"duration_ms,omitempty"`
}

// ErrorBody is the structured error carried inside an envelope.
type ErrorBody struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

func (e *ErrorBody) String() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

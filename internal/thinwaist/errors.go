// SPDX-License-Identifier: MIT

package thinwaist

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrNotFound      = errors.New("thinwaist: resource not found")
	ErrUnauthorized  = errors.New("thinwaist: unauthorized")
	ErrUnavailable   = errors.New("thinwaist: host unreachable or transport failure")
	ErrAPIError      = errors.New("thinwaist: api error")
	ErrBadResponse   = errors.New("thinwaist: invalid response format or malformed data")
	ErrEmptyResponse = errors.New("thinwaist: empty response body")
	ErrTimeout       = errors.New("thinwaist: request timed out")
)

// APIError wraps the sentinel errors with request context.
type APIError struct {
	Sentinel  error
	Operation string
	Status    int
	Code      string // envelope error code, if any
	Message   string // envelope error message, if any
	Err       error  // nested lower-level error (e.g. net.Error)
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("thinwaist: %s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s: %s", msg, e.Code, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Sentinel
}

func sentinelForStatus(status int) error {
	switch {
	case status == 404:
		return ErrNotFound
	case status == 401 || status == 403:
		return ErrUnauthorized
	case status >= 500:
		return ErrUnavailable
	default:
		return ErrAPIError
	}
}

package gamma

import (
	"errors"
	"fmt"
)

// NetworkError wraps a transport-level failure reaching Gamma (DNS,
// connection reset, broken pipe). Callers may retry per their own policy.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("gamma: network failure: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError means the upstream call exceeded its deadline.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string { return fmt.Sprintf("gamma: request timed out: %v", e.Err) }
func (e *TimeoutError) Unwrap() error { return e.Err }

// UpstreamError is a non-2xx response from Gamma.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("gamma: upstream status %d", e.Status) }

// Retryable reports whether the caller should consider retrying
// (server-side failures and rate limiting only).
func (e *UpstreamError) Retryable() bool { return e.Status >= 500 || e.Status == 429 }

// MalformedResponseError means Gamma returned a body that is not JSON or not
// the expected events listing shape. Not retryable: the upstream contract is
// presumed broken until fixed.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "gamma: malformed response: " + e.Reason
}

// IsRetryable classifies an error from the client for caller-side retry
// policy. Malformed responses are never retryable.
func IsRetryable(err error) bool {
	var te *TimeoutError
	if errors.As(err, &te) {
		return true
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return true
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Retryable()
	}
	return false
}

package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ProbeError represents a failed probe with a categorized failure reason.
type ProbeError struct {
	Identity Identity
	Reason   FailCode
	Cause    error
}

// FailCode categorizes why a probe failed.
type FailCode int

const (
	FailUnknown FailCode = iota
	FailTimeout
	FailUnreachable
	FailUnsupported
)

// String returns a human-readable description of the failure reason.
func (c FailCode) String() string {
	switch c {
	case FailTimeout:
		return "timed out"
	case FailUnreachable:
		return "unreachable"
	case FailUnsupported:
		return "unsupported on this system"
	default:
		return "failed"
	}
}

func (e *ProbeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("probe %s failed: %s (%v)", e.Identity, e.Reason, e.Cause)
	}
	return fmt.Sprintf("probe %s failed: %s", e.Identity, e.Reason)
}

func (e *ProbeError) Unwrap() error {
	return e.Cause
}

// categorize converts a generic probe error into a ProbeError with a
// categorized failure reason.
func categorize(identity Identity, err error) *ProbeError {
	if err == nil {
		return nil
	}

	probeErr := &ProbeError{
		Identity: identity,
		Reason:   FailUnknown,
		Cause:    err,
	}

	if errors.Is(err, context.DeadlineExceeded) {
		probeErr.Reason = FailTimeout
		return probeErr
	}

	errStr := strings.ToLower(err.Error())

	// Check for timeout
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		probeErr.Reason = FailTimeout
		return probeErr
	}

	// Check for unreachable network or service
	if strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		probeErr.Reason = FailUnreachable
		return probeErr
	}

	// Check for missing tools or files on this system
	if strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory") {
		probeErr.Reason = FailUnsupported
		return probeErr
	}

	return probeErr
}

// Package provider implements the HTTP client for the remote
// data-collection provider's trigger and delivery endpoints.
package provider

import "fmt"

// TransportError represents a network-level failure talking to the provider
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider transport error during %s: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// RemoteRejectionError represents a non-2xx response from the provider
type RemoteRejectionError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *RemoteRejectionError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("provider rejected %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("provider rejected %s: status %d", e.Op, e.StatusCode)
}

// NotReadyError signals the provider has not finished materializing a job's
// output yet. Callers retry; the condition is not terminal.
type NotReadyError struct {
	RemoteJobID string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("snapshot %s is not ready yet", e.RemoteJobID)
}

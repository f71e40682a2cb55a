package snapshot

import "fmt"

// RetryExhaustedError means the delivery poller hit its retry ceiling
// without the provider materializing the job's output.
type RetryExhaustedError struct {
	RemoteJobID string
	Platform    string
	Role        string
	Attempts    int
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("snapshot %s for %s (%s) was not delivered after %d retries",
		e.RemoteJobID, e.Platform, e.Role, e.Attempts)
}

// InvalidRequestError means the top-level orchestration input was malformed.
// This and total store loss are the only wholesale failures; everything else
// degrades to per-platform error outcomes.
type InvalidRequestError struct {
	Cause error
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid process request: %v", e.Cause)
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Cause
}

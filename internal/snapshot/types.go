// Package snapshot implements the orchestration core: dedup of prior remote
// scrape jobs, triggering new ones, polling delivery into object storage,
// and exposing stored artifacts.
package snapshot

import (
	"encoding/json"
)

// Per-platform outcome statuses
const (
	// StatusExistingSnapshotUsed means a prior remote job was reused
	StatusExistingSnapshotUsed = "existing_snapshot_used"
	// StatusSuccess means a new job was triggered and its output delivered
	StatusSuccess = "success"
	// StatusError means the platform's processing failed
	StatusError = "error"
)

// Delivery poll result statuses
const (
	// DeliveryDelivered means the provider materialized the job's output
	DeliveryDelivered = "delivered"
	// DeliveryError means polling ended without a delivery
	DeliveryError = "error"
)

// ProcessRequest is the inbound orchestration request.
type ProcessRequest struct {
	Roles    []string          `json:"roles" validate:"required,min=1,dive,required"`
	Location string            `json:"location"`
	Filters  map[string]string `json:"filters"`
	UserID   string            `json:"user_id" validate:"required"`
}

// PlatformOutcome is the ephemeral result of processing one (role, platform)
// pair. It is returned synchronously and never persisted.
type PlatformOutcome struct {
	Status      string `json:"status"`
	RemoteJobID string `json:"remote_job_id,omitempty"`
	StoragePath string `json:"storage_path,omitempty"`
	Error       string `json:"error,omitempty"`
}

// RoleOutcome aggregates one PlatformOutcome per requested platform for a
// role. Results are keyed by the platform display name.
type RoleOutcome struct {
	Role    string                     `json:"role"`
	Results map[string]PlatformOutcome `json:"results"`
}

// DeliveryResult is the terminal result of polling one job's delivery.
type DeliveryResult struct {
	RemoteJobID string `json:"remote_job_id"`
	Status      string `json:"status"`
	StoragePath string `json:"storage_path,omitempty"`
	Error       string `json:"error,omitempty"`
}

// UserArtifact pairs a stored snapshot record with its delivered artifact
// content. ArtifactData is nil when the storage fetch failed.
type UserArtifact struct {
	RemoteJobID     string          `json:"remote_job_id"`
	Platform        string          `json:"platform"`
	Role            string          `json:"role"`
	StorageLocation string          `json:"storage_location"`
	ArtifactData    json.RawMessage `json:"artifact_data,omitempty"`
}

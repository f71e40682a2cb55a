package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/karanpatel/jobscout/internal/platform"
)

// DeliveryStatus constants for snapshot records
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusDelivered = "delivered"
)

// SnapshotRecord identifies one remote scrape job tracked by the provider.
// A record is immutable once created except for its terminal delivery
// status; records are never deleted by this subsystem. Dedup uniqueness is
// the triple (role, platform, payload) by exact structural equality.
type SnapshotRecord struct {
	ID              uuid.UUID        `json:"id"`
	Role            string           `json:"role"`
	Platform        string           `json:"platform"`
	RemoteJobID     string           `json:"remote_job_id"`
	Payload         platform.Payload `json:"payload,omitempty"`
	UserID          *string          `json:"user_id,omitempty"`
	DeliveryStatus  string           `json:"delivery_status"`
	StorageLocation *string          `json:"storage_location,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// IsDelivered reports whether the record reached its terminal delivered state.
func (r *SnapshotRecord) IsDelivered() bool {
	return r.DeliveryStatus == DeliveryStatusDelivered
}

// SnapshotCreateInput holds the fields for inserting a new snapshot record
type SnapshotCreateInput struct {
	Role        string
	Platform    string
	RemoteJobID string
	Payload     platform.Payload
	UserID      *string
}

package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/karanpatel/jobscout/internal/platform"
)

// -----------------------------------------------------------------------------
// Snapshot Record Methods
// -----------------------------------------------------------------------------

// InsertSnapshot creates a new snapshot record and returns it with its
// generated ID and timestamp. Writes are append-only; concurrent writers
// insert independent rows and never update another writer's row.
func (db *DB) InsertSnapshot(ctx context.Context, input *SnapshotCreateInput) (*SnapshotRecord, error) {
	payloadJSON, err := json.Marshal(input.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	rec := SnapshotRecord{
		Role:           input.Role,
		Platform:       input.Platform,
		RemoteJobID:    input.RemoteJobID,
		Payload:        input.Payload,
		UserID:         input.UserID,
		DeliveryStatus: DeliveryStatusPending,
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO snapshots (role, platform, remote_job_id, payload, user_id, delivery_status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		input.Role, input.Platform, input.RemoteJobID, payloadJSON, input.UserID, DeliveryStatusPending,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return &rec, nil
}

// FindSnapshotByExactMatch looks up a prior snapshot for the same role and
// platform whose stored payload is structurally identical to the given one.
// Payload comparison uses JSONB equality, so key order is irrelevant but
// any differing field is a miss.
func (db *DB) FindSnapshotByExactMatch(ctx context.Context, role, platformName string, payload platform.Payload) (*SnapshotRecord, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	var rec SnapshotRecord
	var storedPayload []byte

	err = db.pool.QueryRow(ctx,
		`SELECT id, role, platform, remote_job_id, payload, user_id,
		        delivery_status, storage_location, created_at
		 FROM snapshots
		 WHERE role = $1 AND platform = $2 AND payload = $3::jsonb
		 ORDER BY created_at
		 LIMIT 1`,
		role, platformName, payloadJSON,
	).Scan(&rec.ID, &rec.Role, &rec.Platform, &rec.RemoteJobID, &storedPayload,
		&rec.UserID, &rec.DeliveryStatus, &rec.StorageLocation, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find snapshot: %w", err)
	}

	if storedPayload != nil {
		_ = json.Unmarshal(storedPayload, &rec.Payload)
	}

	return &rec, nil
}

// FindSnapshotsByUser retrieves all snapshot records owned by a user,
// oldest first. A user with no records gets an empty slice, not an error.
func (db *DB) FindSnapshotsByUser(ctx context.Context, userID string) ([]SnapshotRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, role, platform, remote_job_id, payload, user_id,
		        delivery_status, storage_location, created_at
		 FROM snapshots
		 WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots for user: %w", err)
	}
	defer rows.Close()

	records := []SnapshotRecord{}
	for rows.Next() {
		var rec SnapshotRecord
		var storedPayload []byte
		if err := rows.Scan(&rec.ID, &rec.Role, &rec.Platform, &rec.RemoteJobID,
			&storedPayload, &rec.UserID, &rec.DeliveryStatus, &rec.StorageLocation,
			&rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if storedPayload != nil {
			_ = json.Unmarshal(storedPayload, &rec.Payload)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading snapshots: %w", err)
	}

	return records, nil
}

// CopySnapshotForUser attaches an existing remote job to a user by inserting
// a fresh record carrying the same role, platform, remote job id and payload.
// The prior record stays untouched.
func (db *DB) CopySnapshotForUser(ctx context.Context, rec *SnapshotRecord, userID string) (*SnapshotRecord, error) {
	return db.InsertSnapshot(ctx, &SnapshotCreateInput{
		Role:        rec.Role,
		Platform:    rec.Platform,
		RemoteJobID: rec.RemoteJobID,
		Payload:     rec.Payload,
		UserID:      &userID,
	})
}

// MarkSnapshotDelivered records the terminal delivery status and storage
// location for a snapshot. This is the only in-place update a record ever
// receives.
func (db *DB) MarkSnapshotDelivered(ctx context.Context, id uuid.UUID, storageLocation string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE snapshots SET delivery_status = $1, storage_location = $2 WHERE id = $3`,
		DeliveryStatusDelivered, storageLocation, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark snapshot delivered: %w", err)
	}
	return nil
}

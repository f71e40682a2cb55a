package snapshot

import (
	"context"
	"fmt"

	"github.com/karanpatel/jobscout/internal/db"
	"github.com/karanpatel/jobscout/internal/platform"
	"github.com/karanpatel/jobscout/internal/schemas"
)

// triggerPlatform validates the payload, submits the scrape request and
// persists the resulting snapshot record. Failures here are reported to the
// orchestrator as per-platform errors and are not retried; retries belong
// to the delivery poller once a job exists.
func (s *Service) triggerPlatform(ctx context.Context, role string, p platform.Platform, payload platform.Payload, userID string) (*db.SnapshotRecord, error) {
	if err := schemas.ValidatePayload(p, payload); err != nil {
		return nil, fmt.Errorf("payload rejected before trigger: %w", err)
	}

	remoteJobID, err := s.provider.Trigger(ctx, p, payload)
	if err != nil {
		return nil, err
	}

	rec, err := s.store.InsertSnapshot(ctx, &db.SnapshotCreateInput{
		Role:        role,
		Platform:    p.Display(),
		RemoteJobID: remoteJobID,
		Payload:     payload,
		UserID:      &userID,
	})
	if err != nil {
		return nil, fmt.Errorf("job %s triggered but record not persisted: %w", remoteJobID, err)
	}

	s.logger.Info("snapshot created",
		"role", role, "platform", p.Display(), "remote_job_id", remoteJobID)
	return rec, nil
}

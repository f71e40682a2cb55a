package snapshot

import (
	"context"

	"github.com/karanpatel/jobscout/internal/db"
	"github.com/karanpatel/jobscout/internal/platform"
)

// findExisting looks for a prior remote job with an identical payload for
// the same role and platform. Dedup is an optimization, not a correctness
// requirement: a store failure is logged and treated as a miss so the
// platform can be re-triggered (fail-open).
func (s *Service) findExisting(ctx context.Context, role string, p platform.Platform, payload platform.Payload) *db.SnapshotRecord {
	rec, err := s.store.FindSnapshotByExactMatch(ctx, role, p.Display(), payload)
	if err != nil {
		s.logger.Error("dedup lookup failed, treating as miss",
			"role", role, "platform", p.Display(), "error", err)
		return nil
	}
	if rec != nil {
		s.logger.Info("existing snapshot found",
			"role", role, "platform", p.Display(), "remote_job_id", rec.RemoteJobID)
	}
	return rec
}

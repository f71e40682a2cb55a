package snapshot

import (
	"context"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/karanpatel/jobscout/internal/platform"
	"github.com/karanpatel/jobscout/internal/storage"
)

var validate = validator.New()

// ProcessRoles fans each requested role out across all platforms:
// dedup lookup first, then trigger and delivery polling on a miss. A
// failure inside one platform's handling becomes that platform's error
// outcome and never aborts sibling platforms or roles; the returned error
// is non-nil only for a malformed request. Role order is preserved and
// every role carries exactly one outcome per platform.
func (s *Service) ProcessRoles(ctx context.Context, req ProcessRequest) ([]RoleOutcome, error) {
	if err := validate.Struct(req); err != nil {
		return nil, &InvalidRequestError{Cause: err}
	}

	filters := platform.ParseFilters(req.Filters)
	results := make([]RoleOutcome, len(req.Roles))

	for i, role := range req.Roles {
		platforms := platform.All()
		outcomes := make([]PlatformOutcome, len(platforms))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.concurrency)
		for j, p := range platforms {
			g.Go(func() error {
				outcomes[j] = s.processPlatform(gctx, role, p, req.Location, filters, req.UserID)
				return nil
			})
		}
		_ = g.Wait() // workers never return errors; failures live in outcomes

		ro := RoleOutcome{Role: role, Results: make(map[string]PlatformOutcome, len(platforms))}
		for j, p := range platforms {
			ro.Results[p.Display()] = outcomes[j]
		}
		results[i] = ro
	}

	return results, nil
}

// processPlatform walks one (role, platform) pair through its states:
// NotStarted, then Deduped or Triggered, ending Delivered or Failed.
// Terminal states are never revisited.
func (s *Service) processPlatform(ctx context.Context, role string, p platform.Platform, location string, filters platform.Filters, userID string) PlatformOutcome {
	payload := p.BuildPayload(role, location, filters)

	if existing := s.findExisting(ctx, role, p, payload); existing != nil {
		if _, err := s.store.CopySnapshotForUser(ctx, existing, userID); err != nil {
			s.logger.Error("failed to attach existing snapshot to user",
				"role", role, "platform", p.Display(), "user_id", userID, "error", err)
			return PlatformOutcome{Status: StatusError, RemoteJobID: existing.RemoteJobID, Error: err.Error()}
		}
		return PlatformOutcome{
			Status:      StatusExistingSnapshotUsed,
			RemoteJobID: existing.RemoteJobID,
		}
	}

	rec, err := s.triggerPlatform(ctx, role, p, payload, userID)
	if err != nil {
		s.logger.Error("failed to trigger snapshot",
			"role", role, "platform", p.Display(), "error", err)
		return PlatformOutcome{Status: StatusError, Error: err.Error()}
	}

	delivery := s.deliverWithRetry(ctx, rec.RemoteJobID, p, role)
	if delivery.Status != DeliveryDelivered {
		return PlatformOutcome{
			Status:      StatusError,
			RemoteJobID: rec.RemoteJobID,
			Error:       delivery.Error,
		}
	}

	// Terminal status is the one in-place update a record receives; a
	// failure here does not undo the delivery itself.
	if err := s.store.MarkSnapshotDelivered(ctx, rec.ID, delivery.StoragePath); err != nil {
		s.logger.Error("failed to record delivery status",
			"remote_job_id", rec.RemoteJobID, "error", err)
	}

	return PlatformOutcome{
		Status:      StatusSuccess,
		RemoteJobID: rec.RemoteJobID,
		StoragePath: delivery.StoragePath,
	}
}

// ListDeliveredArtifacts returns every snapshot record owned by the user
// together with its artifact content fetched from object storage. A failed
// artifact fetch yields nil data for that entry and never aborts the
// listing; a user with no records gets an empty list.
func (s *Service) ListDeliveredArtifacts(ctx context.Context, userID string) ([]UserArtifact, error) {
	records, err := s.store.FindSnapshotsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	artifacts := make([]UserArtifact, 0, len(records))
	for _, rec := range records {
		p, perr := platform.Parse(rec.Platform)
		if perr != nil {
			s.logger.Error("record has unknown platform", "id", rec.ID, "platform", rec.Platform)
			continue
		}

		key := storage.ObjectKey(p, rec.Role, rec.RemoteJobID)
		location := storage.URI(s.target.Bucket, key)
		if rec.StorageLocation != nil {
			location = *rec.StorageLocation
		}

		artifact := UserArtifact{
			RemoteJobID:     rec.RemoteJobID,
			Platform:        rec.Platform,
			Role:            rec.Role,
			StorageLocation: location,
		}

		data, ferr := s.artifacts.Fetch(ctx, key)
		if ferr != nil {
			s.logger.Warn("artifact fetch failed",
				"remote_job_id", rec.RemoteJobID, "key", key, "error", ferr)
		} else {
			artifact.ArtifactData = data
		}

		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/karanpatel/jobscout/internal/platform"
	"github.com/karanpatel/jobscout/internal/provider"
	"github.com/karanpatel/jobscout/internal/storage"
)

// deliverWithRetry polls the provider's delivery endpoint until the job's
// output lands in object storage or the retry ceiling is hit.
//
// The delay before attempt k (0-indexed) is baseDelay * 2^k: purely
// exponential, no jitter, no cap. Not-ready, remote rejections and
// transport failures all fold into the same retry loop; the poller does
// not distinguish permanent remote errors from transient ones.
func (s *Service) deliverWithRetry(ctx context.Context, remoteJobID string, p platform.Platform, role string) DeliveryResult {
	key := storage.ObjectKey(p, role, remoteJobID)
	dest := provider.DeliveryDestination{
		Bucket:           s.target.Bucket,
		AccessKey:        s.target.AccessKey,
		SecretKey:        s.target.SecretKey,
		Directory:        storage.Directory(p, role),
		FilenameTemplate: remoteJobID,
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err := s.provider.Deliver(ctx, remoteJobID, dest)
		if err == nil {
			path := storage.URI(s.target.Bucket, key)
			s.logger.Info("snapshot delivered",
				"remote_job_id", remoteJobID, "platform", p.Display(), "role", role, "path", path)
			return DeliveryResult{
				RemoteJobID: remoteJobID,
				Status:      DeliveryDelivered,
				StoragePath: path,
			}
		}

		var notReady *provider.NotReadyError
		if errors.As(err, &notReady) {
			s.logger.Warn("snapshot not ready yet",
				"remote_job_id", remoteJobID, "platform", p.Display(), "role", role,
				"attempt", attempt+1, "max_retries", s.maxRetries)
		} else {
			s.logger.Error("delivery attempt failed",
				"remote_job_id", remoteJobID, "platform", p.Display(), "role", role,
				"attempt", attempt+1, "error", err)
		}

		delay := s.baseDelay * time.Duration(1<<attempt)
		if err := s.sleep(ctx, delay); err != nil {
			return DeliveryResult{
				RemoteJobID: remoteJobID,
				Status:      DeliveryError,
				Error:       err.Error(),
			}
		}
	}

	exhausted := &RetryExhaustedError{
		RemoteJobID: remoteJobID,
		Platform:    p.Display(),
		Role:        role,
		Attempts:    s.maxRetries,
	}
	s.logger.Error("delivery retries exhausted", "error", exhausted)
	return DeliveryResult{
		RemoteJobID: remoteJobID,
		Status:      DeliveryError,
		Error:       exhausted.Error(),
	}
}

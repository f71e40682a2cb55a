package snapshot

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/karanpatel/jobscout/internal/db"
	"github.com/karanpatel/jobscout/internal/platform"
	"github.com/karanpatel/jobscout/internal/provider"
)

const (
	// DefaultMaxRetries is the delivery poller's retry ceiling
	DefaultMaxRetries = 10
	// DefaultBaseDelay seeds the exponential backoff schedule
	DefaultBaseDelay = 2 * time.Second
	// DefaultPlatformConcurrency bounds the per-role platform fan-out
	DefaultPlatformConcurrency = 3
)

// Store is the snapshot record persistence the service depends on.
type Store interface {
	InsertSnapshot(ctx context.Context, input *db.SnapshotCreateInput) (*db.SnapshotRecord, error)
	FindSnapshotByExactMatch(ctx context.Context, role, platformName string, payload platform.Payload) (*db.SnapshotRecord, error)
	FindSnapshotsByUser(ctx context.Context, userID string) ([]db.SnapshotRecord, error)
	CopySnapshotForUser(ctx context.Context, rec *db.SnapshotRecord, userID string) (*db.SnapshotRecord, error)
	MarkSnapshotDelivered(ctx context.Context, id uuid.UUID, storageLocation string) error
}

// Provider is the remote trigger/delivery surface the service depends on.
type Provider interface {
	Trigger(ctx context.Context, p platform.Platform, payload platform.Payload) (string, error)
	Deliver(ctx context.Context, remoteJobID string, dest provider.DeliveryDestination) error
}

// ArtifactFetcher reads delivered artifacts from object storage by key.
type ArtifactFetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// SleepFunc waits out a backoff delay. It returns early with the context's
// error on cancellation.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ctxSleep is the default SleepFunc: a timer-based wait that yields on
// context cancellation instead of blocking the goroutine unconditionally.
func ctxSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// StorageTarget names the bucket and credentials handed to the provider for
// deliveries.
type StorageTarget struct {
	Bucket    string
	AccessKey string
	SecretKey string
}

// Options tunes the service. Zero values fall back to defaults.
type Options struct {
	MaxRetries          int
	BaseDelay           time.Duration
	PlatformConcurrency int
	// Sleep overrides the backoff wait, used by tests to observe delays.
	Sleep SleepFunc
}

// Service orchestrates snapshot processing across roles and platforms.
type Service struct {
	store       Store
	provider    Provider
	artifacts   ArtifactFetcher
	target      StorageTarget
	maxRetries  int
	baseDelay   time.Duration
	concurrency int
	sleep       SleepFunc
	logger      *slog.Logger
}

// NewService wires the orchestration core. All collaborators are passed in
// at construction; the service holds no ambient global state.
func NewService(store Store, prov Provider, artifacts ArtifactFetcher, target StorageTarget, logger *slog.Logger, opts *Options) *Service {
	s := &Service{
		store:       store,
		provider:    prov,
		artifacts:   artifacts,
		target:      target,
		maxRetries:  DefaultMaxRetries,
		baseDelay:   DefaultBaseDelay,
		concurrency: DefaultPlatformConcurrency,
		sleep:       ctxSleep,
		logger:      logger,
	}
	if opts != nil {
		if opts.MaxRetries > 0 {
			s.maxRetries = opts.MaxRetries
		}
		if opts.BaseDelay > 0 {
			s.baseDelay = opts.BaseDelay
		}
		if opts.PlatformConcurrency > 0 {
			s.concurrency = opts.PlatformConcurrency
		}
		if opts.Sleep != nil {
			s.sleep = opts.Sleep
		}
	}
	return s
}

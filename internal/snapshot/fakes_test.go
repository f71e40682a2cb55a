package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/karanpatel/jobscout/internal/db"
	"github.com/karanpatel/jobscout/internal/platform"
	"github.com/karanpatel/jobscout/internal/provider"
)

// fakeStore is an in-memory snapshot record store.
type fakeStore struct {
	mu          sync.Mutex
	records     []db.SnapshotRecord
	findErr     error
	insertErr   error
	copyErr     error
	deliveredAt map[uuid.UUID]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{deliveredAt: map[uuid.UUID]string{}}
}

func (f *fakeStore) InsertSnapshot(_ context.Context, input *db.SnapshotCreateInput) (*db.SnapshotRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	rec := db.SnapshotRecord{
		ID:             uuid.New(),
		Role:           input.Role,
		Platform:       input.Platform,
		RemoteJobID:    input.RemoteJobID,
		Payload:        input.Payload,
		UserID:         input.UserID,
		DeliveryStatus: db.DeliveryStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeStore) FindSnapshotByExactMatch(_ context.Context, role, platformName string, payload platform.Payload) (*db.SnapshotRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.records {
		rec := f.records[i]
		if rec.Role == role && rec.Platform == platformName && rec.Payload.Equal(payload) {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindSnapshotsByUser(_ context.Context, userID string) ([]db.SnapshotRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := []db.SnapshotRecord{}
	for _, rec := range f.records {
		if rec.UserID != nil && *rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStore) CopySnapshotForUser(ctx context.Context, rec *db.SnapshotRecord, userID string) (*db.SnapshotRecord, error) {
	if f.copyErr != nil {
		return nil, f.copyErr
	}
	return f.InsertSnapshot(ctx, &db.SnapshotCreateInput{
		Role:        rec.Role,
		Platform:    rec.Platform,
		RemoteJobID: rec.RemoteJobID,
		Payload:     rec.Payload,
		UserID:      &userID,
	})
}

func (f *fakeStore) MarkSnapshotDelivered(_ context.Context, id uuid.UUID, storageLocation string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliveredAt[id] = storageLocation
	return nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

// fakeProvider scripts trigger and delivery behavior per platform.
type fakeProvider struct {
	mu              sync.Mutex
	triggerCalls    map[platform.Platform]int
	deliverCalls    map[string]int
	triggerErrs     map[platform.Platform]error
	notReadyUntil   map[string]int // deliveries fail with not-ready until call N
	deliverErr      error
	nextRemoteJobID int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		triggerCalls:  map[platform.Platform]int{},
		deliverCalls:  map[string]int{},
		triggerErrs:   map[platform.Platform]error{},
		notReadyUntil: map[string]int{},
	}
}

func (f *fakeProvider) Trigger(_ context.Context, p platform.Platform, _ platform.Payload) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggerCalls[p]++
	if err := f.triggerErrs[p]; err != nil {
		return "", err
	}
	f.nextRemoteJobID++
	return fmt.Sprintf("snap_%s_%d", p.Slug(), f.nextRemoteJobID), nil
}

func (f *fakeProvider) Deliver(_ context.Context, remoteJobID string, _ provider.DeliveryDestination) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliverCalls[remoteJobID]++
	if f.deliverErr != nil {
		return f.deliverErr
	}
	if f.deliverCalls[remoteJobID] <= f.notReadyUntil[remoteJobID] {
		return &provider.NotReadyError{RemoteJobID: remoteJobID}
	}
	return nil
}

func (f *fakeProvider) triggers(p platform.Platform) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.triggerCalls[p]
}

// fakeFetcher serves artifacts from a map; missing keys error.
type fakeFetcher struct {
	objects map[string][]byte
}

func (f *fakeFetcher) Fetch(_ context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key: " + key)
	}
	return data, nil
}

// recordingSleeper captures backoff delays instead of waiting them out.
type recordingSleeper struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delays = append(r.delays, d)
	return nil
}

func newTestService(store *fakeStore, prov *fakeProvider, fetcher *fakeFetcher, opts *Options) *Service {
	if fetcher == nil {
		fetcher = &fakeFetcher{objects: map[string][]byte{}}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	target := StorageTarget{Bucket: "jobs-bucket", AccessKey: "ak", SecretKey: "sk"}
	if opts == nil {
		opts = &Options{}
	}
	if opts.Sleep == nil {
		opts.Sleep = (&recordingSleeper{}).sleep
	}
	return NewService(store, prov, fetcher, target, logger, opts)
}

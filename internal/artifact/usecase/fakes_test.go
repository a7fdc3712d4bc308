package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/minio"
)

// memRepo keeps artifacts in memory with the same predicates as the SQL queries.
type memRepo struct {
	mu        sync.Mutex
	artifacts map[string]model.ReportArtifact
	jobs      []repository.HistoryRow
	createErr error
}

func newMemRepo() *memRepo {
	return &memRepo{artifacts: map[string]model.ReportArtifact{}}
}

func (r *memRepo) put(a model.ReportArtifact) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.artifacts[a.ID] = a
}

func (r *memRepo) get(id string) model.ReportArtifact {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.artifacts[id]
}

func (r *memRepo) CreateArtifact(_ context.Context, o repository.CreateArtifactOptions) (model.ReportArtifact, error) {
	if r.createErr != nil {
		return model.ReportArtifact{}, r.createErr
	}
	a := model.ReportArtifact{
		ID: o.ID, JobID: o.JobID, OwnerID: o.OwnerID, Name: o.Name, Format: o.Format, ByteSize: o.ByteSize,
		StorageRef: o.StorageRef, ContentType: o.ContentType, GeneratedAt: o.GeneratedAt, ExpiresAt: o.ExpiresAt,
	}
	r.put(a)
	return a, nil
}

func (r *memRepo) GetArtifact(_ context.Context, o repository.GetArtifactOptions) (model.ReportArtifact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.artifacts[o.ID]
	if !ok || a.OwnerID != o.OwnerID {
		return model.ReportArtifact{}, repository.ErrNotFound
	}
	return a, nil
}

func (r *memRepo) IncrementDownload(_ context.Context, o repository.IncrementDownloadOptions) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.artifacts[o.ID]
	if !ok || a.OwnerID != o.OwnerID || !a.IsLive(o.Now) {
		return 0, repository.ErrNotFound
	}
	a.DownloadCount++
	r.artifacts[o.ID] = a
	return a.DownloadCount, nil
}

func (r *memRepo) MarkDeleted(_ context.Context, o repository.MarkDeletedOptions) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.artifacts[o.ID]
	if !ok || a.DeletedAt != nil {
		return false, nil
	}
	now := o.Now
	a.DeletedAt = &now
	r.artifacts[o.ID] = a
	return true, nil
}

func (r *memRepo) ListExpired(_ context.Context, o repository.ListExpiredOptions) ([]model.ReportArtifact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.ReportArtifact{}
	for _, a := range r.artifacts {
		if a.DeletedAt != nil || a.ExpiresAt.After(o.Now) {
			continue
		}
		if o.OwnerID != "" && a.OwnerID != o.OwnerID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if o.Limit > 0 && len(out) > o.Limit {
		out = out[:o.Limit]
	}
	return out, nil
}

func (r *memRepo) ListHistory(_ context.Context, o repository.ListHistoryOptions) ([]repository.HistoryRow, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []repository.HistoryRow{}
	for _, h := range r.jobs {
		if h.Artifact != nil {
			a := r.artifacts[h.Artifact.ID]
			if !a.IsLive(o.Now) {
				continue
			}
			h.Artifact = &a
		}
		out = append(out, h)
	}
	return out, int64(len(out)), nil
}

// memStore is an in-memory object store.
type memStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	putErr    error
	removed   []string
	removeErr error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (s *memStore) PutObject(_ context.Context, key string, data []byte, _ string) (*minio.ObjectInfo, error) {
	if s.putErr != nil {
		return nil, s.putErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	return &minio.ObjectInfo{Key: key, Size: int64(len(data))}, nil
}

func (s *memStore) GetObject(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, minio.NewObjectNotFoundError(key)
	}
	return data, nil
}

func (s *memStore) RemoveObject(_ context.Context, key string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.removed = append(s.removed, key)
	return nil
}

func (s *memStore) ObjectExists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *memStore) has(key string) bool {
	ok, _ := s.ObjectExists(context.Background(), key)
	return ok
}

type mockLock struct {
	mock.Mock
}

func (m *mockLock) AcquireReclaimLock(ctx context.Context, token string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, token, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockLock) ReleaseReclaimLock(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

var errBoom = errors.New("boom")

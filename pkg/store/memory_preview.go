package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MemoryPreviewStore keeps previews in-process with TTL eviction. Suitable
// for single-instance deployments; use the redis backend otherwise.
type MemoryPreviewStore struct {
	cache *cache.Cache
}

var _ PreviewStore = &MemoryPreviewStore{}

func NewMemoryPreviewStore(ttl time.Duration) *MemoryPreviewStore {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &MemoryPreviewStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (s *MemoryPreviewStore) Put(_ context.Context, preview *Preview) (string, error) {
	id := uuid.NewString()
	preview.CreatedAt = time.Now()
	s.cache.Set(id, preview, cache.DefaultExpiration)
	return id, nil
}

func (s *MemoryPreviewStore) Get(_ context.Context, id string) (*Preview, error) {
	if x, found := s.cache.Get(id); found {
		return x.(*Preview), nil
	}
	return nil, ErrPreviewNotFound
}

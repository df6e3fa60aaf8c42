package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"ai-docauthor-be/internal/entity"
)

// DocumentRepository holds authoring sessions in memory. Sessions expire
// after a period of inactivity; every Save refreshes the clock.
type DocumentRepository struct {
	cache *cache.Cache
}

func NewDocumentRepository(ttl time.Duration) *DocumentRepository {
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &DocumentRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *DocumentRepository) Save(doc *entity.Document) {
	r.cache.Set(doc.Id.String(), doc, cache.DefaultExpiration)
}

func (r *DocumentRepository) Get(id uuid.UUID) (*entity.Document, bool) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.Document), true
	}
	return nil, false
}

func (r *DocumentRepository) Delete(id uuid.UUID) {
	r.cache.Delete(id.String())
}

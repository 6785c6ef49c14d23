package retrieval

import (
	"context"
	"fmt"
	"time"

	"ai-research-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// CachedSource memoizes a network-backed Source per query so repeated
// queries within the TTL do not re-hit the public API. Failures are not
// cached; the next call retries the live source.
type CachedSource struct {
	inner Source
	cache *cache.Cache
}

func NewCachedSource(inner Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *CachedSource) Name() string {
	return s.inner.Name()
}

func (s *CachedSource) Fetch(ctx context.Context, query string, limit int) ([]entity.Document, error) {
	key := fmt.Sprintf("%s|%d", query, limit)
	if hit, found := s.cache.Get(key); found {
		cached := hit.([]entity.Document)
		docs := make([]entity.Document, len(cached))
		copy(docs, cached)
		return docs, nil
	}

	docs, err := s.inner.Fetch(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	stored := make([]entity.Document, len(docs))
	copy(stored, docs)
	s.cache.Set(key, stored, cache.DefaultExpiration)
	return docs, nil
}

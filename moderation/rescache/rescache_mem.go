package rescache

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheHitCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_response_cache_hits",
	Help: "Number of response cache hits",
})

var cacheMissCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_response_cache_misses",
	Help: "Number of response cache misses",
})

type Stats struct {
	Hits   uint64
	Misses uint64
}

type MemResponseCache struct {
	data   *lru.Cache[string, string]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewMemResponseCache(capacity int) (*MemResponseCache, error) {
	data, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, err
	}
	return &MemResponseCache{data: data}, nil
}

// Lookups use Peek rather than Get so reads don't refresh recency: eviction
// stays oldest-inserted-first.
func (s *MemResponseCache) Get(ctx context.Context, room, fingerprint string) (string, bool, error) {
	v, ok := s.data.Peek(room + "/" + fingerprint)
	if !ok {
		s.misses.Add(1)
		cacheMissCount.Inc()
		return "", false, nil
	}
	s.hits.Add(1)
	cacheHitCount.Inc()
	return v, true, nil
}

func (s *MemResponseCache) Set(ctx context.Context, room, fingerprint, val string) error {
	s.data.Add(room+"/"+fingerprint, val)
	return nil
}

func (s *MemResponseCache) Purge(ctx context.Context, room, fingerprint string) error {
	s.data.Remove(room + "/" + fingerprint)
	return nil
}

func (s *MemResponseCache) Len() int {
	return s.data.Len()
}

func (s *MemResponseCache) Stats() Stats {
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load()}
}

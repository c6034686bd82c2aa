// Package views counts blog post page views. Counters are best-effort: a
// failed increment is logged by the caller and never fails a page render.
package views

import (
	"context"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

type Store interface {
	// Hit increments the counter for slug and returns the new count.
	Hit(ctx context.Context, slug string) (int64, error)
	// Count reads the counter without incrementing; unknown slugs are 0.
	Count(ctx context.Context, slug string) (int64, error)
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) key(slug string) string {
	return "views:post:" + strings.TrimSpace(slug)
}

func (s *RedisStore) Hit(ctx context.Context, slug string) (int64, error) {
	return s.rdb.Incr(ctx, s.key(slug)).Result()
}

func (s *RedisStore) Count(ctx context.Context, slug string) (int64, error) {
	n, err := s.rdb.Get(ctx, s.key(slug)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// MemoryStore is the fallback when no Redis is configured. Counts reset on
// restart, which is fine for a single-instance personal site.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

func (s *MemoryStore) Hit(ctx context.Context, slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[slug]++
	return s.counts[slug], nil
}

func (s *MemoryStore) Count(ctx context.Context, slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[slug], nil
}

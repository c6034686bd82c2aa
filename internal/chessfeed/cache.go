package chessfeed

import (
	"context"
	"sync"
	"time"
)

const defaultCacheTTL = 5 * time.Minute

// GameLister produces the current merged game list.
type GameLister interface {
	RecentGames(ctx context.Context) []GameRecord
}

// GameCache is a single-slot TTL cache in front of the aggregator. The slot
// is replaced wholesale on refresh, never partially mutated, and the mutex
// covers the whole compare-and-refresh sequence so concurrent misses cannot
// tear the (games, timestamp) pair or stampede upstream.
//
// An empty refresh result is cached for the full TTL like any other. Both
// public chess APIs rate-limit aggressively; an outage must not turn every
// page view into a fresh upstream fetch.
type GameCache struct {
	mu     sync.Mutex
	lister GameLister
	ttl    time.Duration
	now    func() time.Time

	games     []GameRecord
	fetchedAt time.Time
}

func NewGameCache(lister GameLister, ttl time.Duration) *GameCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &GameCache{
		lister: lister,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Get serves the cached list while it is fresh and refreshes synchronously,
// inline with the calling request, once the TTL has elapsed.
func (c *GameCache) Get(ctx context.Context) []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.games
	}

	c.games = c.lister.RecentGames(ctx)
	c.fetchedAt = c.now()
	return c.games
}

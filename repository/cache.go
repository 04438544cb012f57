package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maulepilot117/atbatsim/models"
)

// cacheEntry holds a cached value alongside its expiry and a diagnostic ID,
// the same (value, expiry) shape api-gateway/cache_helpers.go's query cache
// uses, generalized from raw query results to typed repository responses.
type cacheEntry struct {
	id        string
	expiresAt time.Time
	batting   *models.BattingStatLine
	pitching  *models.PitchingStatLine
	roster    []string
	park      *models.ParkFactor
}

func (e *cacheEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// CachingRepository wraps a Repository with an in-process TTL cache keyed by
// (method, id, year), so repeated lookups of the same key return the same
// value without re-querying the backing store every time. It also tracks
// hit/miss counts the way api-gateway/metrics.go's Metrics struct tracks
// cache hits and misses.
type CachingRepository struct {
	inner Repository
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]*cacheEntry

	hits   int64
	misses int64
}

// NewCachingRepository wraps inner with a cache whose entries expire after ttl.
func NewCachingRepository(inner Repository, ttl time.Duration) *CachingRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachingRepository{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
	}
}

func cacheKey(method, id string, year int) string {
	return fmt.Sprintf("%s:%s:%d", method, id, year)
}

func (c *CachingRepository) lookup(key string) (*cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || entry.expired(time.Now()) {
		return nil, false
	}
	return entry, true
}

func (c *CachingRepository) store(key string, entry *cacheEntry) {
	entry.id = uuid.New().String()
	entry.expiresAt = time.Now().Add(c.ttl)
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

func (c *CachingRepository) recordHit()  { c.mu.Lock(); c.hits++; c.mu.Unlock() }
func (c *CachingRepository) recordMiss() { c.mu.Lock(); c.misses++; c.mu.Unlock() }

// Stats reports cumulative hit/miss counts for diagnostics endpoints.
func (c *CachingRepository) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *CachingRepository) GetBatterSeason(ctx context.Context, playerID string, year int) (*models.BattingStatLine, error) {
	key := cacheKey("batter", playerID, year)
	if entry, ok := c.lookup(key); ok {
		c.recordHit()
		return entry.batting, nil
	}
	c.recordMiss()

	line, err := c.inner.GetBatterSeason(ctx, playerID, year)
	if err != nil {
		return nil, err
	}
	c.store(key, &cacheEntry{batting: line})
	return line, nil
}

func (c *CachingRepository) GetPitcherSeason(ctx context.Context, playerID string, year int) (*models.PitchingStatLine, error) {
	key := cacheKey("pitcher", playerID, year)
	if entry, ok := c.lookup(key); ok {
		c.recordHit()
		return entry.pitching, nil
	}
	c.recordMiss()

	line, err := c.inner.GetPitcherSeason(ctx, playerID, year)
	if err != nil {
		return nil, err
	}
	c.store(key, &cacheEntry{pitching: line})
	return line, nil
}

func (c *CachingRepository) GetTeamRoster(ctx context.Context, teamID string, year int) ([]string, error) {
	key := cacheKey("roster", teamID, year)
	if entry, ok := c.lookup(key); ok {
		c.recordHit()
		return entry.roster, nil
	}
	c.recordMiss()

	roster, err := c.inner.GetTeamRoster(ctx, teamID, year)
	if err != nil {
		return nil, err
	}
	c.store(key, &cacheEntry{roster: roster})
	return roster, nil
}

func (c *CachingRepository) GetTeamParkFactor(ctx context.Context, teamID string, year int) (models.ParkFactor, error) {
	key := cacheKey("park", teamID, year)
	if entry, ok := c.lookup(key); ok {
		c.recordHit()
		return *entry.park, nil
	}
	c.recordMiss()

	factor, err := c.inner.GetTeamParkFactor(ctx, teamID, year)
	if err != nil {
		return 0, err
	}
	c.store(key, &cacheEntry{park: &factor})
	return factor, nil
}

package terminology

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eligius-health/eligius/pkg/models"
)

// Cache stores search results in Redis keyed by (system, normalized term).
// The cache is strictly best-effort: a nil client or a Redis failure is
// skipped silently and the caller falls through to the live service.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache creates a terminology cache. rdb may be nil to disable caching.
func NewCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, logger: logger}
}

func cacheKey(system models.TerminologySystem, normalizedTerm string) string {
	return fmt.Sprintf("term:%s:%s", system, normalizedTerm)
}

// Get returns cached candidates for the term, or false on miss or any
// cache failure.
func (c *Cache) Get(ctx context.Context, system models.TerminologySystem, normalizedTerm string) ([]Candidate, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, cacheKey(system, normalizedTerm)).Bytes()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Debug("Terminology cache read failed",
				slog.String("system", string(system)),
				slog.String("error", err.Error()))
		}
		return nil, false
	}

	var candidates []Candidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, false
	}
	return candidates, true
}

// Put stores candidates for the term. Failures are logged and swallowed.
func (c *Cache) Put(ctx context.Context, system models.TerminologySystem, normalizedTerm string, candidates []Candidate) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(candidates)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(system, normalizedTerm), raw, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Debug("Terminology cache write failed",
			slog.String("system", string(system)),
			slog.String("error", err.Error()))
	}
}

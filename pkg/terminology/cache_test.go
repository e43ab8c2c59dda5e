package terminology

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/pkg/models"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb, ttl, nil), mr
}

func TestCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	candidates := []Candidate{
		{Code: "6809", Display: "metformin", System: models.SystemRxNorm, Confidence: 0.9},
	}
	cache.Put(ctx, models.SystemRxNorm, "metformin", candidates)

	got, ok := cache.Get(ctx, models.SystemRxNorm, "metformin")
	require.True(t, ok)
	assert.Equal(t, candidates, got)
}

func TestCache_MissAndExpiry(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx, models.SystemICD10, "hypertension")
	assert.False(t, ok)

	cache.Put(ctx, models.SystemICD10, "hypertension", []Candidate{{Code: "I10"}})
	mr.FastForward(2 * time.Minute)

	_, ok = cache.Get(ctx, models.SystemICD10, "hypertension")
	assert.False(t, ok)
}

func TestCache_KeysAreSystemScoped(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	cache.Put(ctx, models.SystemRxNorm, "aspirin", []Candidate{{Code: "1191"}})

	_, ok := cache.Get(ctx, models.SystemUMLS, "aspirin")
	assert.False(t, ok)
}

func TestCache_NilClientSkipsSilently(t *testing.T) {
	cache := NewCache(nil, time.Hour, nil)
	ctx := context.Background()

	assert.NotPanics(t, func() {
		cache.Put(ctx, models.SystemRxNorm, "aspirin", []Candidate{{Code: "1191"}})
		_, ok := cache.Get(ctx, models.SystemRxNorm, "aspirin")
		assert.False(t, ok)
	})
}

func TestCache_UnavailableRedisFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCache(rdb, time.Hour, nil)
	mr.Close()

	_, ok := cache.Get(context.Background(), models.SystemRxNorm, "aspirin")
	assert.False(t, ok)
	assert.NotPanics(t, func() {
		cache.Put(context.Background(), models.SystemRxNorm, "aspirin", nil)
	})
}

func TestNormalizeTerm(t *testing.T) {
	assert.Equal(t, "type 2 diabetes", NormalizeTerm("  Type 2   DIABETES "))
	assert.Equal(t, "", NormalizeTerm("   "))
}

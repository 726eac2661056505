// internal/gateway/cache_test.go
package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestion-mesh/internal/common/database"
)

// ==========================
// HELPERS
// ==========================

func newMiniredisCache(t *testing.T) (*ResponseCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	wrapper := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return NewResponseCache(wrapper, 30*time.Second, newTestLogger(t)), mr
}

func sampleResponse() *EnhancedSuggestionResponse {
	return &EnhancedSuggestionResponse{
		Suggestions: []SuggestionItem{
			{Text: "Consider caching with additional context", Score: 0.9, Source: "suggestion"},
			{Text: "Kubernetes orchestration patterns", Score: 0.9667, Source: "related"},
		},
		Query:       "caching",
		SourcesUsed: []string{"suggestion", "related"},
		Timestamp:   "2026-01-01T00:00:00Z",
	}
}

// ==========================
// CACHE-ASIDE
// ==========================

func TestCache_SetThenGet(t *testing.T) {
	cache, mr := newMiniredisCache(t)
	ctx := context.Background()

	response := sampleResponse()
	cache.Set(ctx, "caching", 5, response)

	stored, err := mr.Get("suggest:enhanced:caching:5")
	require.NoError(t, err)
	assert.Contains(t, stored, `"query":"caching"`)

	cached, ok := cache.Get(ctx, "caching", 5)
	require.True(t, ok)
	assert.Equal(t, response, cached)
}

func TestCache_MissWhenEmpty(t *testing.T) {
	cache, _ := newMiniredisCache(t)

	cached, ok := cache.Get(context.Background(), "nothing here", 5)

	assert.False(t, ok)
	assert.Nil(t, cached)
}

func TestCache_KeyVariesWithMaxResults(t *testing.T) {
	cache, _ := newMiniredisCache(t)
	ctx := context.Background()

	cache.Set(ctx, "caching", 5, sampleResponse())

	_, ok := cache.Get(ctx, "caching", 3)
	assert.False(t, ok)
}

func TestCache_EntryExpiresAfterTTL(t *testing.T) {
	cache, mr := newMiniredisCache(t)
	ctx := context.Background()

	cache.Set(ctx, "caching", 5, sampleResponse())

	_, ok := cache.Get(ctx, "caching", 5)
	require.True(t, ok)

	mr.FastForward(31 * time.Second)

	_, ok = cache.Get(ctx, "caching", 5)
	assert.False(t, ok)
}

func TestCache_EvictedEntryMissesAgain(t *testing.T) {
	mr := miniredis.RunT(t)
	wrapper := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	cache := NewResponseCache(wrapper, 30*time.Second, newTestLogger(t))
	ctx := context.Background()

	cache.Set(ctx, "caching", 5, sampleResponse())
	_, ok := cache.Get(ctx, "caching", 5)
	require.True(t, ok)

	require.NoError(t, wrapper.Del(ctx, "suggest:enhanced:caching:5"))

	_, ok = cache.Get(ctx, "caching", 5)
	assert.False(t, ok)
}

func TestCache_UndecodableEntryIsAMiss(t *testing.T) {
	cache, mr := newMiniredisCache(t)

	require.NoError(t, mr.Set("suggest:enhanced:caching:5", "not json"))

	cached, ok := cache.Get(context.Background(), "caching", 5)
	assert.False(t, ok)
	assert.Nil(t, cached)
}

// ==========================
// FAIL-OPEN ON REDIS ERRORS
// ==========================

func TestCache_RedisErrorDegradesToMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet("suggest:enhanced:caching:5").SetErr(assert.AnError)

	cache := NewResponseCache(&database.RedisClient{Client: db}, 30*time.Second, newTestLogger(t))

	cached, ok := cache.Get(context.Background(), "caching", 5)

	assert.False(t, ok)
	assert.Nil(t, cached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_RedisWriteErrorIsSwallowed(t *testing.T) {
	response := sampleResponse()
	payload, err := json.Marshal(response)
	require.NoError(t, err)

	db, mock := redismock.NewClientMock()
	mock.ExpectSet("suggest:enhanced:caching:5", payload, 30*time.Second).SetErr(assert.AnError)

	cache := NewResponseCache(&database.RedisClient{Client: db}, 30*time.Second, newTestLogger(t))

	cache.Set(context.Background(), "caching", 5, response)

	assert.NoError(t, mock.ExpectationsWereMet())
}

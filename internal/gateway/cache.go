// internal/gateway/cache.go
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"suggestion-mesh/internal/common/database"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/common/metrics"
)

// ResponseCache is a cache-aside layer over enhanced suggestion responses.
// Every failure is soft: a redis error degrades to a miss and a failed
// write is dropped, the request itself never fails.
type ResponseCache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

// NewResponseCache builds the cache layer over the shared redis wrapper.
func NewResponseCache(redisClient *database.RedisClient, ttl time.Duration, log logger.Logger) *ResponseCache {
	return &ResponseCache{
		redis:  redisClient,
		ttl:    ttl,
		logger: log,
	}
}

func cacheKey(query string, maxResults int) string {
	return fmt.Sprintf("suggest:enhanced:%s:%d", query, maxResults)
}

// Get returns the cached response for the query, or false on a miss. A
// redis error or an undecodable entry counts as a miss.
func (c *ResponseCache) Get(ctx context.Context, query string, maxResults int) (*EnhancedSuggestionResponse, bool) {
	raw, err := c.redis.Get(ctx, cacheKey(query, maxResults))
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Cache lookup failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
		}
		metrics.CacheMisses.WithLabelValues("suggestion").Inc()
		return nil, false
	}

	var cached EnhancedSuggestionResponse
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		c.logger.Warn("Cache entry undecodable", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		metrics.CacheMisses.WithLabelValues("suggestion").Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("suggestion").Inc()
	return &cached, true
}

// Set stores the response best-effort under the configured TTL.
func (c *ResponseCache) Set(ctx context.Context, query string, maxResults int, response *EnhancedSuggestionResponse) {
	payload, err := json.Marshal(response)
	if err != nil {
		c.logger.Warn("Could not encode response for caching", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return
	}

	if err := c.redis.Set(ctx, cacheKey(query, maxResults), payload, c.ttl); err != nil {
		c.logger.Warn("Cache write failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
	}
}

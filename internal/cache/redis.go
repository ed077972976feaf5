// Package cache provides a Redis-backed read-through cache for aggregated
// match statistics. Aggregation is pure over the event log, so a cache entry
// keyed by (match id, event count) never goes stale: new events change the
// count and therefore the key.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrMiss signals the caller should recompute and Set.
var ErrMiss = errors.New("cache miss")

// TTLs by match status: finished aggregates are effectively immutable, live
// ones churn quickly as events stream in.
const (
	ttlFinished = 24 * time.Hour
	ttlLive     = 30 * time.Second
	ttlDefault  = 5 * time.Minute
)

// StatsCache stores serialized AggregatedStats blobs.
type StatsCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// New builds a stats cache over an existing Redis client.
func New(client *redis.Client, logger zerolog.Logger) *StatsCache {
	l := logger.With().Str("module", "cache").Str("component", "stats").Logger()
	return &StatsCache{client: client, log: l}
}

func statsKey(matchID string, eventCount int) string {
	return fmt.Sprintf("match:%s:stats:%d", matchID, eventCount)
}

// Get returns the cached aggregate for the match at the given event count.
// Any Redis failure degrades to a miss; the cache is never load-bearing.
func (c *StatsCache) Get(ctx context.Context, matchID string, eventCount int) (model.AggregatedStats, error) {
	var out model.AggregatedStats
	data, err := c.client.Get(ctx, statsKey(matchID, eventCount)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("match_id", matchID).Msg("cache read failed")
		}
		return out, ErrMiss
	}
	if err := json.Unmarshal(data, &out); err != nil {
		c.log.Warn().Err(err).Str("match_id", matchID).Msg("cache entry corrupt, treating as miss")
		return model.AggregatedStats{}, ErrMiss
	}
	return out, nil
}

// Set stores the aggregate with a TTL chosen by match status.
func (c *StatsCache) Set(ctx context.Context, matchID string, eventCount int, status string, stats model.AggregatedStats) {
	data, err := json.Marshal(stats)
	if err != nil {
		c.log.Error().Err(err).Str("match_id", matchID).Msg("failed to marshal stats for cache")
		return
	}
	ttl := ttlDefault
	switch status {
	case "finished":
		ttl = ttlFinished
	case "live":
		ttl = ttlLive
	}
	if err := c.client.Set(ctx, statsKey(matchID, eventCount), data, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("match_id", matchID).Msg("cache write failed")
	}
}

// Ping verifies connectivity for readiness checks.
func (c *StatsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

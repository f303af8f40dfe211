package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gamecenter-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Invalidation keys for the cached planning views. Every successful
// mutation of an activity or its assignments clears these so the UI
// re-reads a consistent state.
const (
	KeyActivityList   = "events"
	KeyUnassignedList = "events:unassigned"
	keyAssignmentsFmt = "assignments:%s"
)

// ErrMiss is returned by Get when the key is absent or caching is disabled
var ErrMiss = errors.New("cache miss")

// Cache is a read-through view cache backed by Redis. A nil client turns
// every operation into a no-op miss, so callers never branch on whether
// caching is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// New creates a cache on the given Redis client. client may be nil.
func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{client: client, ttl: ttl, log: logger.New().WithField("component", "cache")}
}

// Connect opens a Redis client and verifies the connection. An empty addr
// returns a nil client (caching disabled).
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// AssignmentsKey returns the per-activity assignment list key
func AssignmentsKey(activityID uuid.UUID) string {
	return fmt.Sprintf(keyAssignmentsFmt, activityID)
}

// GetJSON loads a cached value into dest, returning ErrMiss when absent
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if c == nil || c.client == nil {
		return ErrMiss
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		c.log.WithField("key", key).Warnf("cache read failed: %v", err)
		return ErrMiss
	}
	return json.Unmarshal(data, dest)
}

// SetJSON stores a value under key with the cache TTL. Failures are logged
// and swallowed; the cache is never load-bearing.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.log.WithField("key", key).Warnf("cache marshal failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WithField("key", key).Warnf("cache write failed: %v", err)
	}
}

// InvalidateActivityViews clears the event list, the unassigned list and
// the per-activity assignment list.
func (c *Cache) InvalidateActivityViews(ctx context.Context, activityID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	keys := []string{KeyActivityList, KeyUnassignedList, AssignmentsKey(activityID)}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("cache invalidation failed: %v", err)
	}
}

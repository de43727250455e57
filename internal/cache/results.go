package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tonearc/artistdna/internal/profile"
)

var ErrCacheMiss = errors.New("cache: miss")

// ResultCache keeps finished profiles hot for the result polling
// endpoint. Regeneration invalidates the session key.
type ResultCache interface {
	Get(ctx context.Context, sessionID string) (profile.Generated, error)
	Set(ctx context.Context, sessionID string, g profile.Generated) error
	Invalidate(ctx context.Context, sessionID string) error
}

type redisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	return &redisResultCache{client: client, ttl: ttl}
}

func (c *redisResultCache) Get(ctx context.Context, sessionID string) (profile.Generated, error) {
	data, err := c.client.Get(ctx, "result:"+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return profile.Generated{}, ErrCacheMiss
	}
	if err != nil {
		return profile.Generated{}, err
	}
	var g profile.Generated
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		return profile.Generated{}, err
	}
	return g, nil
}

func (c *redisResultCache) Set(ctx context.Context, sessionID string, g profile.Generated) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "result:"+sessionID, data, c.ttl).Err()
}

func (c *redisResultCache) Invalidate(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, "result:"+sessionID).Err()
}

type memoryResultCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]memoryEntry
}

type memoryEntry struct {
	g       profile.Generated
	expires time.Time
}

func NewMemoryResultCache(ttl time.Duration) ResultCache {
	return &memoryResultCache{ttl: ttl, m: map[string]memoryEntry{}}
}

func (c *memoryResultCache) Get(_ context.Context, sessionID string) (profile.Generated, error) {
	c.mu.RLock()
	e, ok := c.m[sessionID]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return profile.Generated{}, ErrCacheMiss
	}
	return e.g, nil
}

func (c *memoryResultCache) Set(_ context.Context, sessionID string, g profile.Generated) error {
	c.mu.Lock()
	c.m[sessionID] = memoryEntry{g: g, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

func (c *memoryResultCache) Invalidate(_ context.Context, sessionID string) error {
	c.mu.Lock()
	delete(c.m, sessionID)
	c.mu.Unlock()
	return nil
}

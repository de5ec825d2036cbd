package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON values under CacheName::key with a fixed TTL.
type Cache struct {
	client    *Client
	cacheName string
	ttl       time.Duration
}

// NewCache creates a cache; a zero ttl falls back to the client's DefaultCacheTTL.
func NewCache(client *Client, cacheName string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = client.config.DefaultCacheTTL
	}
	return &Cache{
		client:    client,
		cacheName: cacheName,
		ttl:       ttl,
	}
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.cacheName != "" {
		return c.cacheName + "::" + key
	}
	return key
}

// Get loads key into dest and reports whether it was present.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize cached value: %w", err)
	}
	return true, nil
}

// Set stores a value in cache with serialization
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.ttl)
}

// Counter reads a persistent counter of this cache; never set reads as zero.
func (c *Cache) Counter(ctx context.Context, key string) (int64, error) {
	return c.client.GetInt64(ctx, c.buildCacheKey(key))
}

// Increment bumps a persistent counter of this cache. Counters carry no TTL.
func (c *Cache) Increment(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, c.buildCacheKey(key))
}

// Clear removes all keys of this cache matching pattern
func (c *Cache) Clear(ctx context.Context, pattern string) error {
	keys, err := c.client.ScanKeys(ctx, c.buildCacheKey(pattern))
	if err != nil {
		return err
	}
	return c.client.Delete(ctx, keys...)
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when nothing is stored under the key.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores raw payloads under CacheName::key with a fixed TTL
type Cache struct {
	client    *Client
	cacheName string
	ttl       time.Duration
}

// NewCache creates a new cache instance. A zero ttl falls back to the client's DefaultCacheTTL.
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

// Get returns the payload stored under key or ErrCacheMiss
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return data, nil
}

// Set stores payload under key with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, c.buildCacheKey(key), payload, c.ttl); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}


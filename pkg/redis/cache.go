package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is used when the client config has no TTL for CacheName
	TTL time.Duration
	// CacheName prefixes every key as CacheName::key
	CacheName    string
	Serializer   func(interface{}) ([]byte, error)
	Deserializer func([]byte, interface{}) error
}

// NewCacheOptions creates a new cache options with default values
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:          5 * time.Minute,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
	}
}

// WithTTL sets the TTL for cache operations
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	if ttl < 0 {
		panic(fmt.Sprintf("invalid TTL: %v, must be non-negative", ttl))
	}
	co.TTL = ttl
	return co
}

// WithCacheName sets the cache name used as key prefix and for TTL lookup
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache provides high-level caching operations
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{
		client: client,
		opts:   opts,
	}
}

// getTTL returns the TTL for the cache, checking client configuration first
func (c *Cache) getTTL() time.Duration {
	if c.opts.CacheName != "" && c.client != nil {
		if clientTTL, exists := c.client.config.CacheTTLs[c.opts.CacheName]; exists {
			return clientTTL
		}
	}
	return c.opts.TTL
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get retrieves a value from cache and deserializes it into dest.
// It returns ErrCacheMiss when the key is absent or expired.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil {
		return err
	}
	return c.opts.Deserializer(data, dest)
}

// Set stores a value in cache with serialization
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.getTTL())
}

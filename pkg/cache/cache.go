package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	TTLContentList = 60 * time.Second // short window; stale lists after a write are acceptable
	TTLTemplate    = 10 * time.Minute // templates change rarely
	TTLSEORules    = 10 * time.Minute
)

// Cache key prefixes
const (
	PrefixContents = "contents:"
	PrefixTemplate = "template:"
	PrefixSEORules = "seo_rules:"
)

// Service Redis cache service interface
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// Content list cache, keyed by (page, pageSize)
	GetContentList(ctx context.Context, page, pageSize int) ([]byte, error)
	SetContentList(ctx context.Context, page, pageSize int, data interface{}) error
	InvalidateContentLists(ctx context.Context) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis-backed cache implementation
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a Redis connection exists
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the Redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads and unmarshals a cached value
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value; silently ignored without Redis
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes keys
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// ========================================
// Content list cache
// ========================================

func (c *redisCache) contentListKey(page, pageSize int) string {
	return fmt.Sprintf("%s%d:%d", PrefixContents, page, pageSize)
}

func (c *redisCache) GetContentList(ctx context.Context, page, pageSize int) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, c.contentListKey(page, pageSize)).Bytes()
}

func (c *redisCache) SetContentList(ctx context.Context, page, pageSize int, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.contentListKey(page, pageSize), jsonData, TTLContentList).Err()
}

// InvalidateContentLists drops every cached page after a mutation.
func (c *redisCache) InvalidateContentLists(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.deleteByPattern(ctx, PrefixContents+"*")
}

func (c *redisCache) deleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

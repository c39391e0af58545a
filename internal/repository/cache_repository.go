package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
)

// CacheRepository stores rendered public payloads. It prefers Redis and
// falls back to an in-process store when no client is configured, so a
// single-instance deployment works without extra infrastructure.
type CacheRepository struct {
	client *redis.Client
	local  *gocache.Cache
	logger *zap.Logger
}

// NewCacheRepository constructs a cache repository. client may be nil.
func NewCacheRepository(client *redis.Client, logger *zap.Logger) *CacheRepository {
	return &CacheRepository{
		client: client,
		local:  gocache.New(5*time.Minute, 10*time.Minute),
		logger: logger,
	}
}

// Get retrieves and unmarshals the cached value into the provided destination.
func (r *CacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	if r.client == nil {
		raw, found := r.local.Get(key)
		if !found {
			return appErrors.ErrCacheMiss
		}
		payload, ok := raw.([]byte)
		if !ok {
			return appErrors.ErrCacheMiss
		}
		if err := json.Unmarshal(payload, dest); err != nil {
			return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
		}
		return nil
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return appErrors.ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}

	return nil
}

// Set marshals the provided value and stores it with the given TTL.
func (r *CacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	if r.client == nil {
		r.local.Set(key, payload, ttl)
		return nil
	}

	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

// DeleteByPattern removes cached entries matching the provided pattern. The
// pattern is a Redis glob; the local fallback treats "prefix*" as a prefix.
func (r *CacheRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.client == nil {
		prefix := strings.TrimSuffix(pattern, "*")
		for key := range r.local.Items() {
			if strings.HasPrefix(key, prefix) {
				r.local.Delete(key)
			}
		}
		return nil
	}

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("redis delete %s: %w", key, err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan pattern %s: %w", pattern, err)
	}

	return nil
}

package rpc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/redis/go-redis/v9"
)

// Fingerprint derives the cache key of a command from its method and params only.
func Fingerprint(cmd Command) (string, error) {
	params, err := json.Marshal(cmd.Params)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(cmd.Method))
	h.Write([]byte{0})
	h.Write(params)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FreeCache is an in-process cache with its own segment locking.
type FreeCache struct {
	cache  *freecache.Cache
	expiry time.Duration
}

// NewFreeCache allocates a cache of sizeMB megabytes. Entries larger than 1/1024 of the
// cache size are not cached.
func NewFreeCache(sizeMB int, expiry time.Duration) *FreeCache {
	if sizeMB <= 0 {
		sizeMB = 64
	}
	return &FreeCache{
		cache:  freecache.NewCache(sizeMB * 1024 * 1024),
		expiry: expiry,
	}
}

// Get returns the cached value for key.
func (c *FreeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores value under key. Entries too large for the cache are skipped without error.
func (c *FreeCache) Set(_ context.Context, key string, value []byte) error {
	err := c.cache.Set([]byte(key), value, int(c.expiry.Seconds()))
	if errors.Is(err, freecache.ErrLargeEntry) {
		return nil
	}
	return err
}

// RedisCache keeps results in a shared Redis instance so several streamers can reuse them.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
	expiry    time.Duration
}

// NewRedisCache connects to addr and verifies the connection.
func NewRedisCache(ctx context.Context, addr, keyPrefix string, expiry time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return newRedisCache(client, keyPrefix, expiry), nil
}

func newRedisCache(client *redis.Client, keyPrefix string, expiry time.Duration) *RedisCache {
	return &RedisCache{client: client, keyPrefix: keyPrefix, expiry: expiry}
}

// Get returns the cached value for key.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores value under key.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, c.keyPrefix+key, value, c.expiry).Err()
}

// Close releases the Redis connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// TieredCache consults a local cache before a remote one and backfills the local tier on remote hits.
type TieredCache struct {
	local  Cache
	remote Cache
}

// NewTieredCache combines local and remote caches. Remote may be nil.
func NewTieredCache(local, remote Cache) *TieredCache {
	return &TieredCache{local: local, remote: remote}
}

// Get returns the cached value for key.
func (c *TieredCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if value, ok, err := c.local.Get(ctx, key); err == nil && ok {
		return value, true, nil
	}
	if c.remote == nil {
		return nil, false, nil
	}
	value, ok, err := c.remote.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	_ = c.local.Set(ctx, key, value)
	return value, true, nil
}

// Set stores value in both tiers.
func (c *TieredCache) Set(ctx context.Context, key string, value []byte) error {
	localErr := c.local.Set(ctx, key, value)
	if c.remote == nil {
		return localErr
	}
	if err := c.remote.Set(ctx, key, value); err != nil {
		return err
	}
	return localErr
}

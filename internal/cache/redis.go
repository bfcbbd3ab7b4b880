package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio/internal/config"
)

const keyPrefix = "page:"

// redisClient is the subset of *redis.Client used by RedisPageCache.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisPageCache keeps rendered pages in Redis with a fixed TTL.
type RedisPageCache struct {
	client redisClient
	ttl    time.Duration
}

var _ PageCache = (*RedisPageCache)(nil)

// NewRedisClient opens a Redis client and verifies connectivity.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return cli, nil
}

// NewRedisPageCache wraps a Redis client. A non-positive ttl keeps entries until invalidated.
func NewRedisPageCache(client redisClient, ttl time.Duration) *RedisPageCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisPageCache{client: client, ttl: ttl}
}

func pageKey(path string) string {
	return keyPrefix + path
}

func (c *RedisPageCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, pageKey(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisPageCache) Set(ctx context.Context, path string, body []byte) error {
	return c.client.Set(ctx, pageKey(path), body, c.ttl).Err()
}

// Invalidate deletes the cached renders for paths in a single DEL.
func (c *RedisPageCache) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, pageKey(p))
	}
	return c.client.Del(ctx, keys...).Err()
}

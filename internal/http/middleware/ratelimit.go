package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateCounter is the subset of the Redis client used for fixed-window counters.
type RateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RateLimit allows at most max requests per client IP in each window.
// Counter failures let the request through. A nil counter disables the limit.
func RateLimit(counter RateCounter, prefix string, max int, window time.Duration, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if counter == nil || max <= 0 {
			return c.Next()
		}

		key := "ratelimit:" + prefix + ":" + c.IP()
		count, err := incrWithTTL(c.UserContext(), counter, key, window)
		if err != nil {
			log.Warn("rate counter unavailable", zap.String("key", key), zap.Error(err))
			return c.Next()
		}
		if count > int64(max) {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(window/time.Second)))
			return fiber.NewError(fiber.StatusTooManyRequests, "too many submissions, try again later")
		}
		return c.Next()
	}
}

func incrWithTTL(ctx context.Context, client RateCounter, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, ttl).Err(); err != nil {
			// A counter without a TTL never resets; drop it so the next hit starts a new window.
			_ = client.Del(ctx, key).Err()
			return 0, err
		}
	}
	return count, nil
}

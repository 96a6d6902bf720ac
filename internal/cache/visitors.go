package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// VisitorCounter keeps per-day visit counters in Redis so the storefront
// counter does not hit Postgres on every page view. Postgres stays the source
// of truth; callers fall back to it when Redis is unavailable.
type VisitorCounter struct {
	rdb *redis.Client
}

// NewVisitorCounter returns nil when REDIS_ADDR is not configured; callers
// treat a nil counter as "no cache".
func NewVisitorCounter() *VisitorCounter {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return &VisitorCounter{rdb: rdb}
}

func dailyKey(day time.Time) string {
	return fmt.Sprintf("visitors:daily:%s", day.Format("2006-01-02"))
}

func (c *VisitorCounter) Incr(ctx context.Context) error {
	key := dailyKey(time.Now())
	if err := c.rdb.Incr(ctx, key).Err(); err != nil {
		return err
	}
	// Counters only matter for the current day; let stale keys expire.
	return c.rdb.Expire(ctx, key, 48*time.Hour).Err()
}

func (c *VisitorCounter) TodayCount(ctx context.Context) (int64, error) {
	n, err := c.rdb.Get(ctx, dailyKey(time.Now())).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

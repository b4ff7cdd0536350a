package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "availability"
	versionKey = keyPrefix + ":version"
)

// AvailabilityCache keeps enumerated start times in Redis. Entries are keyed by
// a generation counter; Invalidate bumps it so stale entries are never read and
// expire on their own TTL. A lookup hands its generation to the matching store,
// so a result computed across an Invalidate lands under the retired generation.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration) *AvailabilityCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

// Times reports a miss on any Redis error so callers fall back to the database.
// The returned generation is negative when the version could not be read.
func (c *AvailabilityCache) Times(ctx context.Context, key shared.AvailabilityKey) ([]string, int64, bool) {
	version, err := c.version(ctx)
	if err != nil {
		slog.Warn("availability cache version read failed", "error", err.Error())
		return nil, -1, false
	}

	raw, err := c.rdb.Get(ctx, entryKey(version, key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("availability cache read failed", "date", key.Date, "error", err.Error())
		}
		return nil, version, false
	}

	if raw == "" {
		return []string{}, version, true
	}
	return strings.Split(raw, ","), version, true
}

func (c *AvailabilityCache) StoreTimes(ctx context.Context, key shared.AvailabilityKey, generation int64, times []string) {
	if generation < 0 {
		return
	}

	k := entryKey(generation, key)
	if err := c.rdb.Set(ctx, k, strings.Join(times, ","), c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "key", k, "error", err.Error())
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, versionKey).Err(); err != nil {
		return errs.Wrap(err, "failed to bump availability cache version")
	}
	return nil
}

func (c *AvailabilityCache) version(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func entryKey(version int64, key shared.AvailabilityKey) string {
	return keyPrefix + ":v" + strconv.FormatInt(version, 10) + ":" + key.EarliestDay + ":" + key.Date + ":" + strconv.Itoa(key.DurationMinutes)
}

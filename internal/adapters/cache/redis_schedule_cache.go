package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisScheduleCache stores computed schedules as JSON values with a TTL.
// The client is safe for concurrent use.
type RedisScheduleCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration) *RedisScheduleCache {
	return &RedisScheduleCache{Client: client, TTL: ttl}
}

// Fetch a cached schedule. A missing key is a miss, not an error.
func (r *RedisScheduleCache) Get(ctx context.Context, key string) (_ []domain.LogEntry, _ bool, err error) {
	defer obs.Time(ctx, "schedule.redis.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("redis schedule cache: client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get redis schedule cache: key must not be empty")
	}

	raw, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get redis schedule cache: %w", err)
	}

	var entries []domain.LogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("get redis schedule cache: decode entries: %w", err)
	}

	return entries, true, nil
}

// Store a schedule under key with the cache TTL.
func (r *RedisScheduleCache) Put(ctx context.Context, key string, entries []domain.LogEntry) error {
	if r.Client == nil {
		return errors.New("redis schedule cache: client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert redis schedule cache: key must not be empty")
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("insert redis schedule cache: encode entries: %w", err)
	}

	if err := r.Client.Set(ctx, key, raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert redis schedule cache key=%q: %w", key, err)
	}

	return nil
}

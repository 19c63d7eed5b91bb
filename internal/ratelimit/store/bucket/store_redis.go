package bucket

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"curpcheck/internal/ratelimit/models"
)

// slidingWindowScript trims the window, then admits the request when there
// is room. It returns {allowed, count, oldest_ms}.
//
// KEYS[1] bucket key
// ARGV[1] now (ms), ARGV[2] window (ms), ARGV[3] limit, ARGV[4] member
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
local allowed = 0
if count < limit then
  redis.call('ZADD', key, now, ARGV[4])
  redis.call('PEXPIRE', key, window)
  count = count + 1
  allowed = 1
end

local oldest = now
local first = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if first[2] then
  oldest = tonumber(first[2])
end
return {allowed, count, oldest}
`)

// RedisBucketStore is a sliding-window store shared by every instance
// pointing at the same Redis.
type RedisBucketStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRedisBucketStore constructs a Redis-backed bucket store.
func NewRedisBucketStore(client redis.UniversalClient) *RedisBucketStore {
	return &RedisBucketStore{client: client, now: time.Now}
}

// Allow checks if a request is allowed and, if so, counts it.
func (s *RedisBucketStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error) {
	now := s.now()
	args := []any{now.UnixMilli(), window.Milliseconds(), limit, strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()}

	vals, err := slidingWindowScript.Run(ctx, s.client, []string{key}, args...).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("rate limit script: %w", err)
	}
	if len(vals) != 3 {
		return nil, fmt.Errorf("rate limit script: unexpected reply length %d", len(vals))
	}

	allowed, count, oldest := vals[0] == 1, int(vals[1]), time.UnixMilli(vals[2])
	resetAt := oldest.Add(window)
	if allowed {
		return &models.RateLimitResult{
			Allowed:   true,
			Limit:     limit,
			Remaining: max(limit-count, 0),
			ResetAt:   resetAt,
		}, nil
	}
	return &models.RateLimitResult{
		Allowed:    false,
		Limit:      limit,
		ResetAt:    resetAt,
		RetryAfter: models.RetryAfterSeconds(resetAt.Sub(now)),
	}, nil
}

// Reset clears the counter for a key.
func (s *RedisBucketStore) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

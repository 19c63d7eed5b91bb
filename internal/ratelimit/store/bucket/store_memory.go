package bucket

import (
	"context"
	"sync"
	"time"

	"curpcheck/internal/ratelimit/models"
)

// InMemoryBucketStore is a process-local sliding-window store. Use
// RedisBucketStore when several instances must share limits.
type InMemoryBucketStore struct {
	mu      sync.Mutex
	buckets map[string]*slidingWindow
	now     func() time.Time
}

// slidingWindow tracks request timestamps, oldest first.
type slidingWindow struct {
	timestamps []time.Time
	window     time.Duration
}

// NewInMemoryBucketStore creates a new in-memory bucket store.
func NewInMemoryBucketStore() *InMemoryBucketStore {
	return &InMemoryBucketStore{
		buckets: make(map[string]*slidingWindow),
		now:     time.Now,
	}
}

// Allow checks if a request is allowed and, if so, counts it.
func (s *InMemoryBucketStore) Allow(_ context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sw := s.getOrCreateBucket(key, window)
	sw.cleanup(now)

	if len(sw.timestamps) < limit {
		sw.timestamps = append(sw.timestamps, now)
		return &models.RateLimitResult{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit - len(sw.timestamps),
			ResetAt:   sw.timestamps[0].Add(window),
		}, nil
	}

	resetAt := sw.timestamps[0].Add(window)
	return &models.RateLimitResult{
		Allowed:    false,
		Limit:      limit,
		Remaining:  0,
		ResetAt:    resetAt,
		RetryAfter: models.RetryAfterSeconds(resetAt.Sub(now)),
	}, nil
}

// Reset clears the counter for a key.
func (s *InMemoryBucketStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

// cleanup removes timestamps that fell out of the window.
func (sw *slidingWindow) cleanup(now time.Time) {
	cutoff := now.Add(-sw.window)
	i := 0
	for ; i < len(sw.timestamps); i++ {
		if sw.timestamps[i].After(cutoff) {
			break
		}
	}
	sw.timestamps = sw.timestamps[i:]
}

// getOrCreateBucket must be called while holding s.mu.
func (s *InMemoryBucketStore) getOrCreateBucket(key string, window time.Duration) *slidingWindow {
	if sw := s.buckets[key]; sw != nil {
		return sw
	}
	sw := &slidingWindow{window: window}
	s.buckets[key] = sw
	return sw
}

package bucket

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"curpcheck/internal/ratelimit/models"
)

const (
	testLimit  = 10
	testWindow = time.Minute
)

type InMemoryBucketStoreSuite struct {
	suite.Suite
	store *InMemoryBucketStore
	clock time.Time
	ctx   context.Context
}

func TestInMemoryBucketStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryBucketStoreSuite))
}

func (s *InMemoryBucketStoreSuite) SetupTest() {
	s.store = NewInMemoryBucketStore()
	s.clock = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.store.now = func() time.Time { return s.clock }
	s.ctx = context.Background()
}

func (s *InMemoryBucketStoreSuite) TestAllow() {
	s.Run("first request allowed", func() {
		result, err := s.store.Allow(s.ctx, "rl:ip:first", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(testLimit, result.Limit)
		s.Equal(testLimit-1, result.Remaining)
		s.Equal(s.clock.Add(testWindow), result.ResetAt)
	})

	s.Run("requests up to limit allowed", func() {
		var result *models.RateLimitResult
		var err error
		for range testLimit {
			result, err = s.store.Allow(s.ctx, "rl:ip:limit", testLimit, testWindow)
		}
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(0, result.Remaining)
	})

	s.Run("request over limit denied with retry hint", func() {
		for range testLimit {
			_, err := s.store.Allow(s.ctx, "rl:ip:over", testLimit, testWindow)
			s.Require().NoError(err)
		}
		s.clock = s.clock.Add(15 * time.Second)

		result, err := s.store.Allow(s.ctx, "rl:ip:over", testLimit, testWindow)
		s.Require().NoError(err)
		s.False(result.Allowed)
		s.Equal(0, result.Remaining)
		s.Equal(45, result.RetryAfter)
	})
}

func (s *InMemoryBucketStoreSuite) TestWindowSlides() {
	for range testLimit {
		_, err := s.store.Allow(s.ctx, "rl:ip:slide", testLimit, testWindow)
		s.Require().NoError(err)
	}

	s.clock = s.clock.Add(testWindow)
	result, err := s.store.Allow(s.ctx, "rl:ip:slide", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
	s.Equal(testLimit-1, result.Remaining)
}

func (s *InMemoryBucketStoreSuite) TestKeysAreIndependent() {
	for range testLimit {
		_, _ = s.store.Allow(s.ctx, "rl:ip:a", testLimit, testWindow)
	}
	result, err := s.store.Allow(s.ctx, "rl:ip:b", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

func (s *InMemoryBucketStoreSuite) TestReset() {
	for range testLimit {
		_, _ = s.store.Allow(s.ctx, "rl:ip:reset", testLimit, testWindow)
	}
	s.Require().NoError(s.store.Reset(s.ctx, "rl:ip:reset"))

	result, err := s.store.Allow(s.ctx, "rl:ip:reset", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

func (s *InMemoryBucketStoreSuite) TestConcurrentAccess() {
	const workers = 50
	var wg sync.WaitGroup
	allowed := make(chan bool, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.store.Allow(s.ctx, "rl:ip:concurrent", testLimit, testWindow)
			if err == nil {
				allowed <- res.Allowed
			}
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	s.Equal(testLimit, count)
}

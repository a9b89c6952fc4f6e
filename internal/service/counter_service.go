package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/emp-portal-api/internal/models"
	appErrors "github.com/noah-isme/emp-portal-api/pkg/errors"
)

const countersCacheKey = "counters:navigation"

// counterStore exposes the shared counters of the record store.
type counterStore interface {
	RecycleCount(ctx context.Context) (int, error)
	PendingRequestCount(ctx context.Context) (int, error)
}

// CounterService serves the recycle-bin and pending-request counters shown in
// navigation. The counters are eventually consistent: reads go through a
// short-TTL cache refreshed on each view activation, and committed mutations
// adjust the cached value without a round trip.
type CounterService struct {
	store  counterStore
	cache  *CacheService
	ttl    time.Duration
	logger *zap.Logger
}

// NewCounterService constructs the counter service.
func NewCounterService(store counterStore, cache *CacheService, ttl time.Duration, logger *zap.Logger) *CounterService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CounterService{store: store, cache: cache, ttl: ttl, logger: logger}
}

// Counters returns both navigation counters, from cache when fresh.
func (s *CounterService) Counters(ctx context.Context) (*models.Counters, error) {
	var cached models.Counters
	if hit, _ := s.cache.Get(ctx, countersCacheKey, &cached); hit {
		return &cached, nil
	}

	recycle, err := s.store.RecycleCount(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status,
			"failed to fetch recycle count")
	}
	pending, err := s.store.PendingRequestCount(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status,
			"failed to fetch pending request count")
	}

	counters := models.Counters{RecycleCount: recycle, RequestsCount: pending}
	_ = s.cache.Set(ctx, countersCacheKey, counters, s.ttl)
	return &counters, nil
}

// AdjustRecycle shifts the cached recycle counter after a committed bulk
// mutation (positive for soft deletes, negative for restores). No backing
// lock: concurrent adjustments may race, and the next cache-miss read
// re-syncs with the store.
func (s *CounterService) AdjustRecycle(ctx context.Context, delta int) {
	if s == nil || delta == 0 {
		return
	}
	var cached models.Counters
	hit, err := s.cache.Get(ctx, countersCacheKey, &cached)
	if err != nil || !hit {
		// Nothing cached to adjust; the next read fetches fresh values.
		return
	}
	cached.RecycleCount += delta
	if cached.RecycleCount < 0 {
		cached.RecycleCount = 0
	}
	if err := s.cache.Set(ctx, countersCacheKey, cached, s.ttl); err != nil {
		s.logger.Warn("failed to adjust cached recycle count", zap.Int("delta", delta), zap.Error(err))
	}
}

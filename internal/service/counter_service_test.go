package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/emp-portal-api/pkg/errors"
)

// memoryCacheRepo is an in-process CacheRepository used across the service
// tests instead of a live Redis.
type memoryCacheRepo struct {
	entries map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: make(map[string][]byte)}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	m.entries = make(map[string][]byte)
	return nil
}

type mockCounterStore struct {
	recycle     int
	pending     int
	recycleErr  error
	pendingErr  error
	recycleHits int
}

func (m *mockCounterStore) RecycleCount(context.Context) (int, error) {
	m.recycleHits++
	return m.recycle, m.recycleErr
}

func (m *mockCounterStore) PendingRequestCount(context.Context) (int, error) {
	return m.pending, m.pendingErr
}

func newTestCacheService() *CacheService {
	return NewCacheService(newMemoryCacheRepo(), nil, time.Minute, nil, true)
}

func TestCountersFetchAndCache(t *testing.T) {
	store := &mockCounterStore{recycle: 12, pending: 3}
	svc := NewCounterService(store, newTestCacheService(), time.Minute, nil)

	counters, err := svc.Counters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, counters.RecycleCount)
	assert.Equal(t, 3, counters.RequestsCount)

	// Second read is served from cache.
	counters, err = svc.Counters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, counters.RecycleCount)
	assert.Equal(t, 1, store.recycleHits)
}

func TestCountersFetchFailure(t *testing.T) {
	store := &mockCounterStore{recycleErr: errors.New("store unavailable")}
	svc := NewCounterService(store, newTestCacheService(), time.Minute, nil)

	_, err := svc.Counters(context.Background())
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrFetchFailed.Code, appErr.Code)
}

func TestAdjustRecycleShiftsCachedValue(t *testing.T) {
	store := &mockCounterStore{recycle: 10, pending: 0}
	svc := NewCounterService(store, newTestCacheService(), time.Minute, nil)
	ctx := context.Background()

	_, err := svc.Counters(ctx)
	require.NoError(t, err)

	svc.AdjustRecycle(ctx, 4)
	counters, err := svc.Counters(ctx)
	require.NoError(t, err)
	assert.Equal(t, 14, counters.RecycleCount)

	svc.AdjustRecycle(ctx, -20)
	counters, err = svc.Counters(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, counters.RecycleCount, "counter never goes negative")

	// No store round trips beyond the initial fill.
	assert.Equal(t, 1, store.recycleHits)
}

func TestAdjustRecycleWithoutCachedValue(t *testing.T) {
	store := &mockCounterStore{recycle: 7}
	svc := NewCounterService(store, newTestCacheService(), time.Minute, nil)
	ctx := context.Background()

	// Nothing cached yet: the adjustment is dropped and the next read
	// fetches the authoritative value.
	svc.AdjustRecycle(ctx, 3)
	counters, err := svc.Counters(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, counters.RecycleCount)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/emp-portal-api/internal/dto"
	"github.com/noah-isme/emp-portal-api/internal/models"
	appErrors "github.com/noah-isme/emp-portal-api/pkg/errors"
)

// mockRecordStore implements directoryStore, recycleStore, and intercomStore.
type mockRecordStore struct {
	all      []models.Employee
	recycled []models.Employee

	fetchErr  error
	mutateErr error

	recycledIDs  []int64
	restoredIDs  []int64
	purgedIDs    []int64
	restoreBatch []models.Employee
}

func (m *mockRecordStore) FetchAll(context.Context) ([]models.Employee, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.all, nil
}

func (m *mockRecordStore) FetchRecycled(context.Context) ([]models.Employee, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.recycled, nil
}

func (m *mockRecordStore) MoveToRecycle(_ context.Context, ids []int64) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	m.recycledIDs = append(m.recycledIDs, ids...)
	return nil
}

func (m *mockRecordStore) Restore(_ context.Context, ids []int64) ([]models.Employee, error) {
	if m.mutateErr != nil {
		return nil, m.mutateErr
	}
	m.restoredIDs = append(m.restoredIDs, ids...)
	return m.restoreBatch, nil
}

func (m *mockRecordStore) PermanentDelete(_ context.Context, ids []int64) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	m.purgedIDs = append(m.purgedIDs, ids...)
	return nil
}

func directoryEmployees(n int) []models.Employee {
	divisions := []string{"Operations", "Finance"}
	employees := make([]models.Employee, 0, n)
	for i := 0; i < n; i++ {
		employees = append(employees, models.Employee{
			ID:             int64(i + 1),
			EmployeeNumber: fmt.Sprintf("EMP%03d", i+1),
			Name:           fmt.Sprintf("Employee %02d", i+1),
			Division:       divisions[i%len(divisions)],
			Designation:    "Officer",
			Gender:         "F",
			BirthDate:      "1990-01-15",
			Status:         "active",
		})
	}
	return employees
}

func newDirectoryFixture(t *testing.T, store *mockRecordStore, pageSize int) (*DirectoryService, *CounterService) {
	t.Helper()
	counterStore := &mockCounterStore{recycle: 5}
	counters := NewCounterService(counterStore, newTestCacheService(), time.Minute, nil)
	// Prime the counter cache so commit hooks have a value to adjust.
	_, err := counters.Counters(context.Background())
	require.NoError(t, err)
	svc := NewDirectoryService(store, counters, nil, pageSize, time.Minute, nil, nil, nil)
	return svc, counters
}

func TestDirectoryOpenSession(t *testing.T) {
	store := &mockRecordStore{all: directoryEmployees(20)}
	svc, _ := newDirectoryFixture(t, store, 15)

	session, err := svc.Open(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, "directory", session.View)
	assert.Equal(t, 20, session.CacheSize)
	assert.Equal(t, 20, session.Page.FilteredTotal)
	assert.Len(t, session.Page.Employees, 15)
	assert.ElementsMatch(t, []string{"Operations", "Finance"}, session.Facets.Divisions)
}

func TestDirectoryOpenFetchFailure(t *testing.T) {
	store := &mockRecordStore{fetchErr: errors.New("record store down")}
	svc, _ := newDirectoryFixture(t, store, 15)

	_, err := svc.Open(context.Background())
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrFetchFailed.Code, appErr.Code)
}

func TestDirectoryUnknownSession(t *testing.T) {
	store := &mockRecordStore{all: directoryEmployees(3)}
	svc, _ := newDirectoryFixture(t, store, 15)

	_, err := svc.Page("no-such-session")
	assert.ErrorIs(t, err, appErrors.ErrSessionNotFound)
	_, err = svc.SoftDelete(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, appErrors.ErrSessionNotFound)
}

func TestDirectoryFilterResetsPagination(t *testing.T) {
	store := &mockRecordStore{all: directoryEmployees(40)}
	svc, _ := newDirectoryFixture(t, store, 15)

	session, err := svc.Open(context.Background())
	require.NoError(t, err)

	page, err := svc.LoadMore(session.SessionID)
	require.NoError(t, err)
	assert.Len(t, page.Employees, 30)

	page, err = svc.SetFilter(session.SessionID, dto.FilterRequest{Divisions: []string{"Finance"}})
	require.NoError(t, err)
	assert.Equal(t, 20, page.FilteredTotal)
	assert.Len(t, page.Employees, 15, "window shrinks back to one page on filter change")
	for _, e := range page.Employees {
		assert.Equal(t, "Finance", e.Division)
	}
}

func TestDirectorySelectionFlow(t *testing.T) {
	store := &mockRecordStore{all: directoryEmployees(10)}
	svc, _ := newDirectoryFixture(t, store, 15)

	session, err := svc.Open(context.Background())
	require.NoError(t, err)
	id := session.SessionID

	sel, err := svc.Toggle(id, dto.ToggleRequest{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, sel.SelectedCount)

	sel, err = svc.SelectNext(id, dto.SelectNextRequest{Count: 4})
	require.NoError(t, err)
	assert.Equal(t, 5, sel.SelectedCount)

	sel, err = svc.ToggleAll(id)
	require.NoError(t, err)
	assert.Equal(t, 10, sel.SelectedCount)

	sel, err = svc.ClearSelection(id)
	require.NoError(t, err)
	assert.Equal(t, 0, sel.SelectedCount)
}

func TestDirectorySoftDelete(t *testing.T) {
	store := &mockRecordStore{all: directoryEmployees(10)}
	svc, counters := newDirectoryFixture(t, store, 15)
	ctx := context.Background()

	session, err := svc.Open(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.Toggle(id, dto.ToggleRequest{ID: 2})
	require.NoError(t, err)
	_, err = svc.Toggle(id, dto.ToggleRequest{ID: 7})
	require.NoError(t, err)

	res, err := svc.SoftDelete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(models.IntentSoftDelete), res.Kind)
	assert.Equal(t, 2, res.Count)
	assert.ElementsMatch(t, []int64{2, 7}, store.recycledIDs)

	page, err := svc.Page(id)
	require.NoError(t, err)
	assert.Equal(t, 8, page.CacheSize)
	assert.Equal(t, 0, page.SelectedCount)

	navCounters, err := counters.Counters(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, navCounters.RecycleCount, "commit hook bumps the cached recycle counter")
}

func TestDirectorySoftDeleteEmptySelection(t *testing.T) {
	store := &mockRecordStore{all: directoryEmployees(5)}
	svc, _ := newDirectoryFixture(t, store, 15)
	ctx := context.Background()

	session, err := svc.Open(ctx)
	require.NoError(t, err)

	_, err = svc.SoftDelete(ctx, session.SessionID)
	assert.ErrorIs(t, err, appErrors.ErrEmptySelection)
	assert.Empty(t, store.recycledIDs)
}

func TestDirectorySoftDeleteRollback(t *testing.T) {
	store := &mockRecordStore{all: directoryEmployees(6), mutateErr: errors.New("store rejected batch")}
	svc, counters := newDirectoryFixture(t, store, 15)
	ctx := context.Background()

	session, err := svc.Open(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.ToggleAll(id)
	require.NoError(t, err)

	_, err = svc.SoftDelete(ctx, id)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrMutationRejected.Code, appErr.Code)

	page, err := svc.Page(id)
	require.NoError(t, err)
	assert.Equal(t, 6, page.CacheSize, "cache restored after rejected mutation")
	assert.Equal(t, 6, page.FilteredTotal)

	navCounters, err := counters.Counters(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, navCounters.RecycleCount, "failed intents leave the counter alone")
}

func TestDirectoryRefreshClearsSelection(t *testing.T) {
	store := &mockRecordStore{all: directoryEmployees(8)}
	svc, _ := newDirectoryFixture(t, store, 15)
	ctx := context.Background()

	session, err := svc.Open(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.ToggleAll(id)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 8, refreshed.CacheSize)
	assert.Equal(t, 0, refreshed.Page.SelectedCount)
}

func TestDirectoryCloseSession(t *testing.T) {
	store := &mockRecordStore{all: directoryEmployees(3)}
	svc, _ := newDirectoryFixture(t, store, 15)

	session, err := svc.Open(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Close(session.SessionID))
	assert.ErrorIs(t, svc.Close(session.SessionID), appErrors.ErrSessionNotFound)
}

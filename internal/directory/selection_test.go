package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleDefaultsToFalse(t *testing.T) {
	s := NewSelectionSet()
	assert.False(t, s.IsSelected(1))
	s.Toggle(1)
	assert.True(t, s.IsSelected(1))
	s.Toggle(1)
	assert.False(t, s.IsSelected(1))
}

func TestToggleAllScopedToFilteredView(t *testing.T) {
	s := NewSelectionSet()
	cached := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	filtered := []int64{2, 5, 9}

	s.ToggleAll(filtered)
	assert.Equal(t, 3, s.Count(filtered))
	assert.Equal(t, 3, s.Count(cached))
	// Hidden records stay untouched.
	assert.False(t, s.IsSelected(1))
	assert.False(t, s.IsSelected(10))

	// Every filtered id selected -> second call clears them.
	s.ToggleAll(filtered)
	assert.Equal(t, 0, s.Count(cached))
}

func TestToggleAllSelectsWhenPartiallySelected(t *testing.T) {
	s := NewSelectionSet()
	filtered := []int64{1, 2, 3}
	s.Toggle(2)

	s.ToggleAll(filtered)
	assert.Equal(t, 3, s.Count(filtered))
}

func TestSelectNextSkipsSelectedAndWraps(t *testing.T) {
	s := NewSelectionSet()
	ids := []int64{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	s.Toggle(12)
	s.Toggle(15)

	next := s.SelectNext(5, 0, ids)
	// Walk selects 10,11,13,14,16 skipping the two pre-selected ids; the
	// resumption index points just past the last touched id (index 6).
	assert.Equal(t, 7, next)
	assert.Equal(t, 7, s.Count(ids))
	for _, id := range []int64{10, 11, 13, 14, 16} {
		assert.True(t, s.IsSelected(id), "id %d", id)
	}
	assert.False(t, s.IsSelected(17))

	// A follow-up batch picks up where the last left off.
	next = s.SelectNext(5, next, ids)
	assert.Equal(t, 10, s.Count(ids))
	assert.Equal(t, 0, next)
}

func TestSelectNextWrapsToStart(t *testing.T) {
	s := NewSelectionSet()
	ids := []int64{1, 2, 3, 4}
	next := s.SelectNext(3, 2, ids)
	// Selects 3, 4 then wraps to pick 1; resumption lands on index 1.
	assert.Equal(t, 1, next)
	assert.True(t, s.IsSelected(3))
	assert.True(t, s.IsSelected(4))
	assert.True(t, s.IsSelected(1))
	assert.False(t, s.IsSelected(2))
}

func TestSelectNextAllAlreadySelected(t *testing.T) {
	s := NewSelectionSet()
	ids := []int64{1, 2}
	s.Toggle(1)
	s.Toggle(2)
	assert.Equal(t, 1, s.SelectNext(5, 1, ids))
	assert.Equal(t, 2, s.Count(ids))
}

func TestNextBatchUsesStoredCursor(t *testing.T) {
	s := NewSelectionSet()
	ids := []int64{1, 2, 3, 4, 5, 6}
	s.NextBatch(2, ids)
	assert.Equal(t, 2, s.Count(ids))
	s.NextBatch(2, ids)
	assert.True(t, s.IsSelected(3))
	assert.True(t, s.IsSelected(4))

	s.Clear()
	assert.Equal(t, 0, s.Count(ids))
	s.NextBatch(1, ids)
	// Clear reset the walk cursor back to the head of the list.
	assert.True(t, s.IsSelected(1))
}

func TestCountUsesFilteredDenominator(t *testing.T) {
	s := NewSelectionSet()
	filtered := []int64{1, 2, 3}
	s.ToggleAll(filtered)

	all := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	require.Equal(t, 3, s.Count(filtered))
	require.Equal(t, 3, s.Count(all))
}

func TestPruneDropsMissingIDs(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3)

	s.Prune(map[int64]struct{}{1: {}, 3: {}})
	assert.True(t, s.IsSelected(1))
	assert.False(t, s.IsSelected(2))
	assert.True(t, s.IsSelected(3))
}

func TestSelectedIDsPreservesOrder(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle(30)
	s.Toggle(10)
	assert.Equal(t, []int64{10, 30}, s.SelectedIDs([]int64{10, 20, 30}))
}

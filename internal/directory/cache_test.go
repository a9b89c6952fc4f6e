package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/emp-portal-api/internal/models"
)

func cacheWith(ids ...int64) *RecordCache {
	records := make([]models.Employee, len(ids))
	for i, id := range ids {
		records[i] = models.Employee{ID: id}
	}
	c := NewRecordCache()
	c.Populate(records)
	return c
}

func TestRecordCacheRemoveKeepsOrder(t *testing.T) {
	c := cacheWith(1, 2, 3, 4, 5)
	removed := c.Remove([]int64{2, 4})
	require.Len(t, removed, 2)
	assert.Equal(t, []int64{1, 3, 5}, c.IDs())
	assert.Equal(t, 1, removed[0].Index)
	assert.Equal(t, 3, removed[1].Index)
}

func TestRecordCacheReinsertRestoresOrder(t *testing.T) {
	c := cacheWith(1, 2, 3, 4, 5)
	snapshot := c.Remove([]int64{2, 4})
	c.Reinsert(snapshot)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, c.IDs())
}

func TestRecordCacheReinsertAtTail(t *testing.T) {
	c := cacheWith(1, 2, 3)
	snapshot := c.Remove([]int64{3})
	c.Reinsert(snapshot)
	assert.Equal(t, []int64{1, 2, 3}, c.IDs())
}

func TestRecordCacheGenerationBumps(t *testing.T) {
	c := cacheWith(1, 2, 3)
	gen := c.Generation()

	// Removing nothing leaves the generation alone.
	c.Remove([]int64{99})
	assert.Equal(t, gen, c.Generation())

	snapshot := c.Remove([]int64{2})
	assert.Greater(t, c.Generation(), gen)

	gen = c.Generation()
	c.Reinsert(snapshot)
	assert.Greater(t, c.Generation(), gen)

	gen = c.Generation()
	c.Populate(nil)
	assert.Greater(t, c.Generation(), gen)
}

func TestRecordCacheContains(t *testing.T) {
	c := cacheWith(7)
	assert.True(t, c.Contains(7))
	assert.False(t, c.Contains(8))
}

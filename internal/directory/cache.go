package directory

import "github.com/noah-isme/emp-portal-api/internal/models"

// PositionedRecord pairs a removed record with its index at removal time so a
// rollback can reinsert it at the prior relative position.
type PositionedRecord struct {
	Index  int
	Record models.Employee
}

// RecordCache is the insertion-ordered working set of one view. It carries a
// generation counter bumped on every structural change; the mutation
// coordinator compares generations so a late-arriving response can never
// corrupt a cache that has since been repopulated.
type RecordCache struct {
	records    []models.Employee
	generation uint64
}

// NewRecordCache returns an empty cache.
func NewRecordCache() *RecordCache {
	return &RecordCache{}
}

// Populate replaces the cache contents with a fresh fetch result.
func (c *RecordCache) Populate(records []models.Employee) {
	c.records = append(c.records[:0:0], records...)
	c.generation++
}

// Records returns the cached records in insertion order. The returned slice
// is the cache's own backing; callers must treat it as read-only.
func (c *RecordCache) Records() []models.Employee {
	return c.records
}

// Len returns the number of cached records.
func (c *RecordCache) Len() int {
	return len(c.records)
}

// Generation returns the current cache generation.
func (c *RecordCache) Generation() uint64 {
	return c.generation
}

// IDs returns the cached ids in insertion order.
func (c *RecordCache) IDs() []int64 {
	ids := make([]int64, len(c.records))
	for i, e := range c.records {
		ids[i] = e.ID
	}
	return ids
}

// IDSet returns the set of cached ids.
func (c *RecordCache) IDSet() map[int64]struct{} {
	set := make(map[int64]struct{}, len(c.records))
	for _, e := range c.records {
		set[e.ID] = struct{}{}
	}
	return set
}

// Contains reports whether id is cached.
func (c *RecordCache) Contains(id int64) bool {
	for _, e := range c.records {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Remove drops the given ids from the cache and returns the removed records
// with their prior positions, oldest position first. Ids not present are
// ignored.
func (c *RecordCache) Remove(ids []int64) []PositionedRecord {
	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	removed := make([]PositionedRecord, 0, len(ids))
	kept := c.records[:0]
	for i, e := range c.records {
		if _, ok := drop[e.ID]; ok {
			removed = append(removed, PositionedRecord{Index: i, Record: e})
			continue
		}
		kept = append(kept, e)
	}
	if len(removed) > 0 {
		c.records = kept
		c.generation++
	}
	return removed
}

// Reinsert restores a Remove snapshot at its prior relative positions,
// yielding a cache identical by id set and order to the pre-removal state
// when nothing else changed in between.
func (c *RecordCache) Reinsert(snapshot []PositionedRecord) {
	if len(snapshot) == 0 {
		return
	}
	for _, pr := range snapshot {
		idx := pr.Index
		if idx > len(c.records) {
			idx = len(c.records)
		}
		c.records = append(c.records, models.Employee{})
		copy(c.records[idx+1:], c.records[idx:])
		c.records[idx] = pr.Record
	}
	c.generation++
}

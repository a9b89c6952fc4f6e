package directory

import (
	"sync"
	"time"

	"github.com/noah-isme/emp-portal-api/internal/models"
)

// ViewKind distinguishes the three portal screens sharing this engine.
type ViewKind string

const (
	ViewDirectory ViewKind = "directory"
	ViewRecycle   ViewKind = "recycle"
	ViewIntercom  ViewKind = "intercom"
)

// View owns one screen's record cache, filter state, selection set, and
// pagination window. Derived state (facets, filtered list) is recomputed as
// one atomic step with every cache or filter change, so a reader never
// observes a removed record still counted in a facet.
type View struct {
	mu sync.Mutex

	kind      ViewKind
	cache     *RecordCache
	filter    models.FilterState
	facets    models.FacetMap
	filtered  []models.Employee
	selection *SelectionSet
	window    *Window

	now func() time.Time
}

// NewView builds an empty view with the given page size.
func NewView(kind ViewKind, pageSize int) *View {
	return &View{
		kind:      kind,
		cache:     NewRecordCache(),
		filter:    models.DefaultFilterState(),
		selection: NewSelectionSet(),
		window:    NewWindow(pageSize),
		now:       time.Now,
	}
}

// WithClock overrides the view's clock; used by tests and by callers that
// need deterministic age evaluation.
func (v *View) WithClock(now func() time.Time) *View {
	v.mu.Lock()
	defer v.mu.Unlock()
	if now != nil {
		v.now = now
	}
	return v
}

// Kind returns the view kind.
func (v *View) Kind() ViewKind {
	return v.kind
}

// Populate replaces the cache with a fresh fetch and drops derived state:
// selection is cleared (the old generation's picks are meaningless against a
// new snapshot) and the window resets.
func (v *View) Populate(records []models.Employee) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cache.Populate(records)
	v.selection.Clear()
	v.window.Reset()
	v.recomputeLocked()
}

// Facets returns the facet map derived from the current cache.
func (v *View) Facets() models.FacetMap {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.facets
}

// SetFilter installs a new filter state. The pagination window resets
// unconditionally on every call; selection is left alone (its filtered count
// simply shrinks or grows with the view).
func (v *View) SetFilter(f models.FilterState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = f.Normalize()
	v.window.Reset()
	v.recomputeLocked()
}

// Filter returns the active filter state.
func (v *View) Filter() models.FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Page returns the visible slice of the filtered list plus the filtered total
// and the current visible count.
func (v *View) Page() ([]models.Employee, int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := v.window.Slice(len(v.filtered))
	page := make([]models.Employee, n)
	copy(page, v.filtered[:n])
	return page, len(v.filtered), v.window.Visible()
}

// LoadMore grows the window and returns the new visible count.
func (v *View) LoadMore() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.window.LoadMore()
}

// Toggle flips selection for one id.
func (v *View) Toggle(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.Toggle(id)
}

// ToggleAll toggles selection over the currently filtered ids only.
func (v *View) ToggleAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.ToggleAll(v.filteredIDsLocked())
}

// SelectNextBatch selects up to n not-yet-selected filtered ids, resuming
// from the stored walk cursor and wrapping at the end of the list.
func (v *View) SelectNextBatch(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.NextBatch(n, v.filteredIDsLocked())
}

// ClearSelection empties the selection set.
func (v *View) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.Clear()
}

// SelectionCount returns selected-in-filter and filtered-total counts.
func (v *View) SelectionCount() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := v.filteredIDsLocked()
	return v.selection.Count(ids), len(ids)
}

// SelectedIDs returns the selected ids restricted to the filtered view, in
// view order. These are the ids a bulk mutation acts on.
func (v *View) SelectedIDs() []int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.SelectedIDs(v.filteredIDsLocked())
}

// Len returns the cache size.
func (v *View) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cache.Len()
}

func (v *View) filteredIDsLocked() []int64 {
	ids := make([]int64, len(v.filtered))
	for i, e := range v.filtered {
		ids[i] = e.ID
	}
	return ids
}

func (v *View) recomputeLocked() {
	v.facets = ExtractFacets(v.cache.Records())
	v.filtered = ApplyFilter(v.cache.Records(), v.filter, v.now())
}

// applyRemoval is the optimistic half of a bulk intent: it prunes ids that
// have already vanished from the cache, removes the rest, and recomputes
// derived state atomically. It returns the rollback snapshot, the surviving
// ids, and the cache generation captured after the removal.
func (v *View) applyRemoval(ids []int64) ([]PositionedRecord, []int64, uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	present := v.cache.IDSet()
	kept := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := present[id]; ok {
			kept = append(kept, id)
		}
	}
	snapshot := v.cache.Remove(kept)
	v.recomputeLocked()
	return snapshot, kept, v.cache.Generation()
}

// commitRemoval finalizes a committed intent: stale selection entries are
// pruned. Returns false when the cache generation moved on (a newer populate
// or intent won), in which case nothing is touched.
func (v *View) commitRemoval(generation uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cache.Generation() != generation {
		return false
	}
	v.selection.Prune(v.cache.IDSet())
	return true
}

// rollbackRemoval reinserts the snapshot at its prior relative positions and
// recomputes. Selection is left untouched except for ids that no longer
// exist. Returns false when the generation moved on.
func (v *View) rollbackRemoval(snapshot []PositionedRecord, generation uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cache.Generation() != generation {
		return false
	}
	v.cache.Reinsert(snapshot)
	v.recomputeLocked()
	v.selection.Prune(v.cache.IDSet())
	return true
}

package directory

// SelectionSet tracks which record ids the user has picked, independent of
// which records are currently visible. It is created empty on entering select
// mode and discarded on leaving it.
type SelectionSet struct {
	picked map[int64]bool
	cursor int
}

// NewSelectionSet returns an empty selection.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{picked: make(map[int64]bool)}
}

// Toggle flips the selected state for id; absent entries default to false.
func (s *SelectionSet) Toggle(id int64) {
	s.picked[id] = !s.picked[id]
}

// IsSelected reports whether id is selected.
func (s *SelectionSet) IsSelected(id int64) bool {
	return s.picked[id]
}

// ToggleAll operates over the currently filtered view only: if every filtered
// id is already selected it clears them, otherwise it selects them all.
// Records hidden by the active filter are never touched.
func (s *SelectionSet) ToggleAll(filteredIDs []int64) {
	all := len(filteredIDs) > 0
	for _, id := range filteredIDs {
		if !s.picked[id] {
			all = false
			break
		}
	}
	for _, id := range filteredIDs {
		s.picked[id] = !all
	}
}

// SelectNext walks orderedIDs starting at start (wrapping to 0 at the end),
// selecting up to n ids that are not already selected, and returns the index
// immediately after the last id it touched so a subsequent call resumes with a
// fresh batch instead of re-selecting the same records.
func (s *SelectionSet) SelectNext(n int, start int, orderedIDs []int64) int {
	if n <= 0 || len(orderedIDs) == 0 {
		return start
	}
	if start < 0 || start >= len(orderedIDs) {
		start = 0
	}
	next := start
	taken := 0
	for i := 0; i < len(orderedIDs) && taken < n; i++ {
		idx := (start + i) % len(orderedIDs)
		id := orderedIDs[idx]
		if s.picked[id] {
			continue
		}
		s.picked[id] = true
		taken++
		next = (idx + 1) % len(orderedIDs)
	}
	return next
}

// NextBatch is SelectNext driven by the set's stored walk cursor.
func (s *SelectionSet) NextBatch(n int, orderedIDs []int64) {
	s.cursor = s.SelectNext(n, s.cursor, orderedIDs)
}

// Clear empties the selection and resets the stored walk cursor.
func (s *SelectionSet) Clear() {
	s.picked = make(map[int64]bool)
	s.cursor = 0
}

// Count returns how many selected ids are present in filteredIDs, so
// "Selected: X / Y" displays reflect the filtered denominator.
func (s *SelectionSet) Count(filteredIDs []int64) int {
	n := 0
	for _, id := range filteredIDs {
		if s.picked[id] {
			n++
		}
	}
	return n
}

// SelectedIDs returns the selected ids in the order of orderedIDs.
func (s *SelectionSet) SelectedIDs(orderedIDs []int64) []int64 {
	ids := make([]int64, 0, len(s.picked))
	for _, id := range orderedIDs {
		if s.picked[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Prune drops entries whose id is no longer present in the cache. Stale
// entries are a normal consequence of concurrent soft-deletes in other views
// and are removed silently rather than propagated as errors.
func (s *SelectionSet) Prune(present map[int64]struct{}) {
	for id := range s.picked {
		if _, ok := present[id]; !ok {
			delete(s.picked, id)
		}
	}
}

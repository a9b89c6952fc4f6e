package directory

// Page sizes observed across the portal views.
const (
	DefaultPageSize  = 15
	IntercomPageSize = 8
)

// Window is the monotonically growing visible-count over a filtered list. It
// grows by the page step on each LoadMore and resets to the initial size on
// any filter-affecting change; selection changes never reset it.
type Window struct {
	initial int
	step    int
	visible int
}

// NewWindow builds a window with the given page size used for both the
// initial count and the load-more increment.
func NewWindow(pageSize int) *Window {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Window{initial: pageSize, step: pageSize, visible: pageSize}
}

// Visible returns the current visible count. Consumers slice
// min(Visible, len(filtered)) themselves; the count is never clamped here.
func (w *Window) Visible() int {
	return w.visible
}

// LoadMore grows the window by one page step and returns the new count.
func (w *Window) LoadMore() int {
	w.visible += w.step
	return w.visible
}

// Reset shrinks the window back to the initial page size.
func (w *Window) Reset() {
	w.visible = w.initial
}

// Slice returns how many of n filtered records are visible.
func (w *Window) Slice(n int) int {
	if n < w.visible {
		return n
	}
	return w.visible
}

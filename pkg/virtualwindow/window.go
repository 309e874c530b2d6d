// Package virtualwindow computes which rows of a large fixed-height list
// must be materialized for display. It is independent of any rendering
// framework; the consuming UI layer translates the returned index range
// into draw calls.
package virtualwindow

// Defaults mirroring the dashboard's list geometry.
const (
	DefaultItemHeight     = 60
	DefaultViewportHeight = 600
	DefaultOverscan       = 10
)

// VisibleRange returns the inclusive index range [first, last] of rows to
// render for the given scroll position. Overscan rows are added on both
// sides to mask scroll-induced pop-in. The range always covers every row
// intersecting the viewport and never exceeds [0, totalCount-1].
//
// When totalCount is zero the range is empty (last < first). The
// computation is O(1) so it can run on every scroll-position change.
func VisibleRange(totalCount, itemHeight, viewportHeight, scrollOffset, overscan int) (first, last int) {
	if totalCount <= 0 || itemHeight <= 0 {
		return 0, -1
	}

	first = scrollOffset/itemHeight - overscan
	if first < 0 {
		first = 0
	}
	if first > totalCount-1 {
		first = totalCount - 1
	}

	visible := (viewportHeight+itemHeight-1)/itemHeight + 2*overscan

	last = first + visible
	if last > totalCount-1 {
		last = totalCount - 1
	}
	return first, last
}

package virtualwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleRange_CoversViewport(t *testing.T) {
	first, last := VisibleRange(10000, 60, 600, 3000, 5)

	// The first visible row is 3000/60 = 50; overscan may only extend the
	// range, never shrink it.
	assert.LessOrEqual(t, first, 50)
	assert.GreaterOrEqual(t, last, first+10)
	assert.GreaterOrEqual(t, first, 0)
	assert.LessOrEqual(t, last, 9999)
}

func TestVisibleRange_Boundaries(t *testing.T) {
	tests := []struct {
		name         string
		totalCount   int
		scrollOffset int
		wantFirst    int
		wantLastMax  int
	}{
		{"top of list", 10000, 0, 0, 9999},
		{"scrolled past the end", 10000, 10_000_000, 9999, 9999},
		{"negative offset clamps to zero", 10000, -500, 0, 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := VisibleRange(tt.totalCount, 60, 600, tt.scrollOffset, 5)

			assert.Equal(t, tt.wantFirst, first)
			assert.GreaterOrEqual(t, last, first)
			assert.LessOrEqual(t, last, tt.wantLastMax)
		})
	}
}

func TestVisibleRange_EmptyList(t *testing.T) {
	first, last := VisibleRange(0, 60, 600, 0, 5)
	assert.Greater(t, first, last, "empty list must yield an empty range")
}

func TestVisibleRange_SmallList(t *testing.T) {
	first, last := VisibleRange(3, DefaultItemHeight, DefaultViewportHeight, 0, DefaultOverscan)
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, last)
}

func TestVisibleRange_OverscanPadding(t *testing.T) {
	// Deep in a large list, overscan extends both sides of the viewport.
	first, last := VisibleRange(10000, 60, 600, 6000, 5)
	assert.Equal(t, 95, first)
	assert.Equal(t, 115, last)
}

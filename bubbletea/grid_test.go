package bubbletea

import (
	"testing"

	"github.com/fwojciec/sectiongrid"
	"github.com/stretchr/testify/assert"
)

func sized(sizes ...int) grid {
	sections := make([]sectiongrid.Section, len(sizes))
	for i, n := range sizes {
		sections[i].Items = make([]sectiongrid.Item, n)
	}
	return newGrid(sections, 3)
}

func coord(s, i int) sectiongrid.Coordinate {
	return sectiongrid.Coordinate{Section: s, Item: i}
}

func TestGrid_FirstAndLastSkipEmptySections(t *testing.T) {
	t.Parallel()

	g := sized(0, 5, 0, 2, 0)

	first, ok := g.first()
	assert.True(t, ok)
	assert.Equal(t, coord(1, 0), first)

	last, ok := g.last()
	assert.True(t, ok)
	assert.Equal(t, coord(3, 1), last)
}

func TestGrid_EmptyHasNoCursor(t *testing.T) {
	t.Parallel()

	for _, g := range []grid{sized(), sized(0, 0)} {
		_, ok := g.first()
		assert.False(t, ok)
		_, ok = g.last()
		assert.False(t, ok)
		_, ok = g.clamp(coord(0, 0))
		assert.False(t, ok)
	}
}

func TestGrid_Moves(t *testing.T) {
	t.Parallel()

	// Section 0 holds two rows (3 + 2 cells), section 1 is empty, section 2 one row.
	g := sized(5, 0, 2)

	tests := []struct {
		name string
		move func(sectiongrid.Coordinate) sectiongrid.Coordinate
		from sectiongrid.Coordinate
		want sectiongrid.Coordinate
	}{
		{"right within section", g.right, coord(0, 0), coord(0, 1)},
		{"right wraps to next row", g.right, coord(0, 2), coord(0, 3)},
		{"right crosses to next section", g.right, coord(0, 4), coord(2, 0)},
		{"right stops at last item", g.right, coord(2, 1), coord(2, 1)},
		{"left within section", g.left, coord(0, 3), coord(0, 2)},
		{"left crosses to previous section", g.left, coord(2, 0), coord(0, 4)},
		{"left stops at first item", g.left, coord(0, 0), coord(0, 0)},
		{"down keeps column", g.down, coord(0, 1), coord(0, 4)},
		{"down clamps to short row", g.down, coord(0, 2), coord(0, 4)},
		{"down crosses to next section", g.down, coord(0, 4), coord(2, 1)},
		{"down stops at last row", g.down, coord(2, 0), coord(2, 0)},
		{"up keeps column", g.up, coord(0, 4), coord(0, 1)},
		{"up crosses to last row of previous section", g.up, coord(2, 1), coord(0, 4)},
		{"up clamps to short row", g.up, coord(2, 0), coord(0, 3)},
		{"up stops at first row", g.up, coord(0, 2), coord(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.move(tt.from))
		})
	}
}

func TestGrid_Clamp(t *testing.T) {
	t.Parallel()

	g := sized(5, 0, 2)

	tests := []struct {
		name string
		from sectiongrid.Coordinate
		want sectiongrid.Coordinate
	}{
		{"valid unchanged", coord(2, 1), coord(2, 1)},
		{"item past end", coord(0, 9), coord(0, 4)},
		{"negative item", coord(0, -1), coord(0, 0)},
		{"empty section moves forward", coord(1, 0), coord(2, 0)},
		{"section past end", coord(7, 0), coord(2, 1)},
		{"negative section", coord(-1, 3), coord(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := g.clamp(tt.from)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrid_ClampTrailingEmptySectionMovesBack(t *testing.T) {
	t.Parallel()

	got, ok := sized(2, 0).clamp(coord(1, 0))

	assert.True(t, ok)
	assert.Equal(t, coord(0, 1), got)
}

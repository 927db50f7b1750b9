package bubbletea

import "github.com/fwojciec/sectiongrid"

// grid describes the navigable shape of the rendered sections: how many items
// each section holds and how many cells fit on a row. Every coordinate it
// returns addresses a rendered item.
type grid struct {
	columns int
	sizes   []int // item count per section
}

func newGrid(sections []sectiongrid.Section, columns int) grid {
	sizes := make([]int, len(sections))
	for i, s := range sections {
		sizes[i] = len(s.Items)
	}
	return grid{columns: max(columns, 1), sizes: sizes}
}

func (g grid) valid(c sectiongrid.Coordinate) bool {
	return c.Section >= 0 && c.Section < len(g.sizes) && c.Item >= 0 && c.Item < g.sizes[c.Section]
}

// first returns the first item of the first non-empty section.
func (g grid) first() (sectiongrid.Coordinate, bool) {
	s, ok := g.nextSection(-1)
	if !ok {
		return sectiongrid.Coordinate{}, false
	}
	return sectiongrid.Coordinate{Section: s}, true
}

// last returns the last item of the last non-empty section.
func (g grid) last() (sectiongrid.Coordinate, bool) {
	s, ok := g.prevSection(len(g.sizes))
	if !ok {
		return sectiongrid.Coordinate{}, false
	}
	return sectiongrid.Coordinate{Section: s, Item: g.sizes[s] - 1}, true
}

// clamp maps c onto the nearest valid coordinate after the sections changed.
func (g grid) clamp(c sectiongrid.Coordinate) (sectiongrid.Coordinate, bool) {
	switch {
	case g.valid(c):
		return c, true
	case c.Section < 0:
		return g.first()
	case c.Section >= len(g.sizes):
		return g.last()
	case g.sizes[c.Section] > 0:
		return sectiongrid.Coordinate{Section: c.Section, Item: min(max(c.Item, 0), g.sizes[c.Section]-1)}, true
	}
	if s, ok := g.nextSection(c.Section); ok {
		return sectiongrid.Coordinate{Section: s}, true
	}
	return g.last()
}

func (g grid) right(c sectiongrid.Coordinate) sectiongrid.Coordinate {
	if c.Item+1 < g.sizes[c.Section] {
		return sectiongrid.Coordinate{Section: c.Section, Item: c.Item + 1}
	}
	if s, ok := g.nextSection(c.Section); ok {
		return sectiongrid.Coordinate{Section: s}
	}
	return c
}

func (g grid) left(c sectiongrid.Coordinate) sectiongrid.Coordinate {
	if c.Item > 0 {
		return sectiongrid.Coordinate{Section: c.Section, Item: c.Item - 1}
	}
	if s, ok := g.prevSection(c.Section); ok {
		return sectiongrid.Coordinate{Section: s, Item: g.sizes[s] - 1}
	}
	return c
}

// down moves one row down, keeping the column where possible. Past the last
// row of a section it enters the first row of the next non-empty section.
func (g grid) down(c sectiongrid.Coordinate) sectiongrid.Coordinate {
	row, col := c.Item/g.columns, c.Item%g.columns
	n := g.sizes[c.Section]
	if (row+1)*g.columns < n {
		return sectiongrid.Coordinate{Section: c.Section, Item: min((row+1)*g.columns+col, n-1)}
	}
	if s, ok := g.nextSection(c.Section); ok {
		return sectiongrid.Coordinate{Section: s, Item: min(col, g.sizes[s]-1)}
	}
	return c
}

// up moves one row up, keeping the column where possible. Above the first
// row of a section it enters the last row of the previous non-empty section.
func (g grid) up(c sectiongrid.Coordinate) sectiongrid.Coordinate {
	row, col := c.Item/g.columns, c.Item%g.columns
	if row > 0 {
		return sectiongrid.Coordinate{Section: c.Section, Item: c.Item - g.columns}
	}
	if s, ok := g.prevSection(c.Section); ok {
		n := g.sizes[s]
		lastRow := (n - 1) / g.columns
		return sectiongrid.Coordinate{Section: s, Item: min(lastRow*g.columns+col, n-1)}
	}
	return c
}

func (g grid) nextSection(from int) (int, bool) {
	for s := from + 1; s < len(g.sizes); s++ {
		if g.sizes[s] > 0 {
			return s, true
		}
	}
	return 0, false
}

func (g grid) prevSection(from int) (int, bool) {
	for s := from - 1; s >= 0; s-- {
		if g.sizes[s] > 0 {
			return s, true
		}
	}
	return 0, false
}

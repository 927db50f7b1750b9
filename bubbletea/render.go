package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/sectiongrid"
)

// Layout constants for the grid.
const (
	cellGap      = 1 // Columns between adjacent cells
	minCellWidth = 8 // Narrowest cell that still shows a marker and some text
	cellHeight   = 3 // Bordered cells are one text line plus top and bottom border
)

// Cell markers; they keep selection visible on terminals without color.
const (
	selectedMarker   = "[x] "
	unselectedMarker = "[ ] "
)

// Compile-time interface verification.
var _ sectiongrid.Renderer = (*cellRenderer)(nil)

// cellRenderer renders each payload variant of the grid.
type cellRenderer struct {
	width     int // Full width available to a section
	cellWidth int // Outer width of a single cell, borders included
	cursor    sectiongrid.Coordinate
	hasCursor bool

	header   lipgloss.Style
	footer   lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	border   lipgloss.Style
	focus    lipgloss.Style
}

func newCellRenderer(styles sectiongrid.Styles, renderer *lipgloss.Renderer, width, columns int) *cellRenderer {
	columns = max(columns, 1)
	cellWidth := max((width-(columns-1)*cellGap)/columns, minCellWidth)
	return &cellRenderer{
		width:     width,
		cellWidth: cellWidth,
		header:    styleFromColorPair(styles.Header, renderer).Bold(true),
		footer:    styleFromColorPair(styles.Footer, renderer),
		item:      styleFromColorPair(styles.Item, renderer),
		selected:  styleFromColorPair(styles.SelectedItem, renderer).Bold(true),
		border:    styleFromColorPair(styles.Border, renderer),
		focus:     styleFromColorPair(styles.Cursor, renderer),
	}
}

// Render implements sectiongrid.Renderer.
func (r *cellRenderer) Render(p sectiongrid.Payload) string {
	switch p := p.(type) {
	case sectiongrid.HeaderPayload:
		return r.header.Render(ansi.Truncate(singleLine(p.Title, 0), r.width, "…"))
	case sectiongrid.ItemPayload:
		return r.renderCell(p)
	case sectiongrid.FooterPayload:
		return r.renderFooter(p)
	default:
		return ""
	}
}

func (r *cellRenderer) renderCell(p sectiongrid.ItemPayload) string {
	marker := unselectedMarker
	text := r.item
	if p.Item.Selected {
		marker = selectedMarker
		text = r.selected
	}

	// Inner width excludes the two border columns and one column of padding per side.
	inner := r.cellWidth - 4
	label := ansi.Truncate(marker+singleLine(p.Item.Name, len(marker)), inner, "…")

	frame := r.border
	if r.hasCursor && p.At == r.cursor {
		frame = r.focus
	}

	return text.
		Padding(0, 1).
		Width(r.cellWidth-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(frame.GetForeground()).
		Render(label)
}

func (r *cellRenderer) renderFooter(p sectiongrid.FooterPayload) string {
	if p.Text == "" {
		return r.footer.Render(strings.Repeat("─", max(r.width, 1)))
	}
	prefix := "── " + singleLine(p.Text, 3) + " "
	fill := max(r.width-lipgloss.Width(prefix), 3)
	return r.footer.Render(prefix + strings.Repeat("─", fill))
}

// renderConfig holds all rendering parameters for renderGrid.
type renderConfig struct {
	sections  []sectiongrid.Section
	styles    sectiongrid.Styles
	renderer  *lipgloss.Renderer
	width     int
	columns   int
	cursor    sectiongrid.Coordinate
	hasCursor bool
}

// renderGrid renders sections as rows of cells and returns the content along
// with the first line of the row holding the cursor (0 without a cursor).
func renderGrid(cfg renderConfig) (string, int) {
	if len(cfg.sections) == 0 {
		return "", 0
	}

	cr := newCellRenderer(cfg.styles, cfg.renderer, cfg.width, cfg.columns)
	cr.cursor = cfg.cursor
	cr.hasCursor = cfg.hasCursor
	columns := max(cfg.columns, 1)

	var sb strings.Builder
	lines := 0
	cursorLine := 0
	writeLine := func(s string) {
		sb.WriteString(s)
		sb.WriteString("\n")
		lines += strings.Count(s, "\n") + 1
	}

	var row []string
	rowHasCursor := false
	flush := func() {
		if len(row) == 0 {
			return
		}
		if rowHasCursor {
			cursorLine = lines
		}
		cells := make([]string, 0, 2*len(row)-1)
		for i, cell := range row {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", cellGap))
			}
			cells = append(cells, cell)
		}
		writeLine(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		row = row[:0]
		rowHasCursor = false
	}

	for _, p := range sectiongrid.Payloads(cfg.sections) {
		switch p := p.(type) {
		case sectiongrid.HeaderPayload:
			writeLine(cr.Render(p))
		case sectiongrid.ItemPayload:
			row = append(row, cr.Render(p))
			if cfg.hasCursor && p.At == cfg.cursor {
				rowHasCursor = true
			}
			if len(row) == columns {
				flush()
			}
		case sectiongrid.FooterPayload:
			flush()
			writeLine(cr.Render(p))
		}
	}

	return strings.TrimSuffix(sb.String(), "\n"), cursorLine
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp sectiongrid.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

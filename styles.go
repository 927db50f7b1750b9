package sectiongrid

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of the grid.
type Styles struct {
	Header       ColorPair // Section titles
	Footer       ColorPair // Section separators and footer text
	Item         ColorPair // Unselected cells
	SelectedItem ColorPair // Selected cells
	Border       ColorPair // Cell borders
	Cursor       ColorPair // Border of the focused cell
	Status       ColorPair // Status bar
	Notice       ColorPair // Transient notices such as "limit reached"
}

// Theme provides styles for rendering the grid.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}

package bubbletea

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// tabWidth is the distance between tab stops in cell labels.
const tabWidth = 4

// singleLine makes s safe for a one-line cell: line breaks become spaces,
// tabs expand to the next tab stop, and other control characters are dropped.
// startCol is the column where s begins, which affects the first tab.
func singleLine(s string, startCol int) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		switch {
		case r == '\t':
			nextStop := ((col / tabWidth) + 1) * tabWidth
			sb.WriteString(strings.Repeat(" ", nextStop-col))
			col = nextStop
		case r == '\n' || r == '\r':
			sb.WriteRune(' ')
			col++
		case unicode.IsControl(r):
		default:
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
		}
	}
	return sb.String()
}

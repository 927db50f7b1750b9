package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/sectiongrid/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msgs    []tea.KeyMsg
	}{
		{"Up", km.Up, []tea.KeyMsg{runeKey('k'), {Type: tea.KeyUp}}},
		{"Down", km.Down, []tea.KeyMsg{runeKey('j'), {Type: tea.KeyDown}}},
		{"Left", km.Left, []tea.KeyMsg{runeKey('h'), {Type: tea.KeyLeft}}},
		{"Right", km.Right, []tea.KeyMsg{runeKey('l'), {Type: tea.KeyRight}}},
		{"GotoTop", km.GotoTop, []tea.KeyMsg{runeKey('g'), {Type: tea.KeyHome}}},
		{"GotoBottom", km.GotoBottom, []tea.KeyMsg{runeKey('G'), {Type: tea.KeyEnd}}},
		{"Toggle", km.Toggle, []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune{' '}}, runeKey('x')}},
		{"Confirm", km.Confirm, []tea.KeyMsg{{Type: tea.KeyEnter}}},
		{"Copy", km.Copy, []tea.KeyMsg{runeKey('y')}},
		{"Help", km.Help, []tea.KeyMsg{runeKey('?')}},
		{"Quit", km.Quit, []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, msg := range tt.msgs {
				assert.True(t, key.Matches(msg, tt.binding), "%q should match %s binding", msg.String(), tt.name)
			}
		})
	}
}

func TestKeyMap_HelpText(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	for _, group := range km.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key, "binding should have help key")
			assert.NotEmpty(t, b.Help().Desc, "binding should have help description")
		}
	}
	assert.NotEmpty(t, km.ShortHelp())
}

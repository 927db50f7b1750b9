package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/sectiongrid"
)

// Compile-time interface verification.
var _ sectiongrid.Viewer = (*Viewer)(nil)

// Viewer implements sectiongrid.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a new Viewer. The options are applied to every Model it creates.
func NewViewer(opts ...ModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// View displays the selector's sections and blocks until the user exits.
// It returns sectiongrid.ErrCancelled when the user quits without confirming.
func (v *Viewer) View(ctx context.Context, sel *sectiongrid.Selector) error {
	m := NewModel(sel, v.opts...)
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	if fm, ok := final.(Model); !ok || !fm.Confirmed() {
		return sectiongrid.ErrCancelled
	}
	return nil
}

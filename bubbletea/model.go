// Package bubbletea provides a terminal grid for sectioned selection using the Bubble Tea framework.
package bubbletea

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/sectiongrid"
)

// DefaultNoticeDuration is how long transient notices stay visible.
const DefaultNoticeDuration = 2 * time.Second

// chromeHeight is the number of lines below the grid: status bar and help.
const chromeHeight = 2

// SetSectionsMsg replaces the sections shown by a running Model.
type SetSectionsMsg struct {
	Sections []sectiongrid.Section
}

// SetLimitMsg changes the selection limit of a running Model.
type SetLimitMsg struct {
	Limit sectiongrid.Limit
}

// clearNoticeMsg hides the notice with the given id if it is still showing.
type clearNoticeMsg struct {
	id int
}

// inbox buffers events pushed by the Selector until the Model drains them.
// It is shared by all copies of a Model.
type inbox struct {
	mu     sync.Mutex
	events []any
	stop   []func()
}

func (b *inbox) push(ev any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

func (b *inbox) drain() []any {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Model is the Bubble Tea model for the selection grid. It renders the
// Selector's sections and forwards toggles at the cursor to it.
type Model struct {
	selector *sectiongrid.Selector
	inbox    *inbox

	// Snapshot of selector state used for rendering
	sections []sectiongrid.Section
	limit    sectiongrid.Limit
	count    int

	cursor    sectiongrid.Coordinate
	hasCursor bool
	columns   int

	// UI state
	viewport  viewport.Model
	help      help.Model
	keymap    KeyMap
	styles    sectiongrid.Styles
	renderer  *lipgloss.Renderer
	width     int
	height    int
	ready     bool
	confirmed bool

	notice         string
	noticeID       int
	noticeDuration time.Duration

	clipboard sectiongrid.Clipboard
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer       *lipgloss.Renderer
	theme          sectiongrid.Theme
	columns        int
	clipboard      sectiongrid.Clipboard
	noticeDuration time.Duration
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t sectiongrid.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithColumns sets the number of cells per row.
func WithColumns(n int) ModelOption {
	return func(cfg *modelConfig) {
		cfg.columns = n
	}
}

// WithClipboard enables copying the selection.
func WithClipboard(c sectiongrid.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithNoticeDuration sets how long notices such as "limit reached" stay visible.
func WithNoticeDuration(d time.Duration) ModelOption {
	return func(cfg *modelConfig) {
		cfg.noticeDuration = d
	}
}

// NewModel creates a Model bound to sel. It subscribes to the selector's
// events; call Close to unsubscribe when the model is discarded.
func NewModel(sel *sectiongrid.Selector, opts ...ModelOption) Model {
	cfg := &modelConfig{
		columns:        sectiongrid.DefaultColumns,
		noticeDuration: DefaultNoticeDuration,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var styles sectiongrid.Styles
	if cfg.theme != nil {
		styles = cfg.theme.Styles()
	} else {
		styles = defaultStyles()
	}

	box := &inbox{}
	box.stop = []func(){
		sel.OnSelectionChanged(func(ev sectiongrid.SelectionChanged) { box.push(ev) }),
		sel.OnLimitReached(func(ev sectiongrid.LimitReached) { box.push(ev) }),
	}

	m := Model{
		selector:       sel,
		inbox:          box,
		columns:        max(cfg.columns, 1),
		help:           help.New(),
		keymap:         DefaultKeyMap(),
		styles:         styles,
		renderer:       cfg.renderer,
		noticeDuration: cfg.noticeDuration,
		clipboard:      cfg.clipboard,
	}
	m.sync()
	if c, ok := m.grid().first(); ok {
		m.cursor, m.hasCursor = c, true
	}
	return m
}

// Close unsubscribes the model from its selector.
func (m Model) Close() {
	m.inbox.mu.Lock()
	stop := m.inbox.stop
	m.inbox.stop = nil
	m.inbox.mu.Unlock()
	for _, fn := range stop {
		fn()
	}
}

// Confirmed reports whether the user confirmed the selection before quitting.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Cursor returns the focused coordinate, if any item exists.
func (m Model) Cursor() (sectiongrid.Coordinate, bool) {
	return m.cursor, m.hasCursor
}

// Notice returns the transient notice currently displayed.
func (m Model) Notice() string {
	return m.notice
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		gridHeight := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, gridHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = gridHeight
		}
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case SetSectionsMsg:
		m.selector.ReplaceSections(msg.Sections)
		cmd := m.drain()
		m.clampCursor()
		m.refresh()
		return m, cmd

	case SetLimitMsg:
		m.selector.SetLimit(msg.Limit)
		m.sync()
		m.refresh()
		return m, nil

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.grid()
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Confirm):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keymap.Copy):
		return m, m.copySelection()
	}

	if !m.hasCursor {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Toggle):
		var cmd tea.Cmd
		if _, err := m.selector.Toggle(m.cursor); err != nil {
			cmd = m.showNotice(err.Error())
		}
		if drained := m.drain(); drained != nil {
			cmd = drained
		}
		m.refresh()
		return m, cmd
	case key.Matches(msg, m.keymap.Up):
		m.cursor = g.up(m.cursor)
	case key.Matches(msg, m.keymap.Down):
		m.cursor = g.down(m.cursor)
	case key.Matches(msg, m.keymap.Left):
		m.cursor = g.left(m.cursor)
	case key.Matches(msg, m.keymap.Right):
		m.cursor = g.right(m.cursor)
	case key.Matches(msg, m.keymap.GotoTop):
		m.cursor, _ = g.first()
	case key.Matches(msg, m.keymap.GotoBottom):
		m.cursor, _ = g.last()
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// drain applies events the selector pushed since the last drain. It returns
// a command clearing the notice when a limit was reached.
func (m *Model) drain() tea.Cmd {
	var cmd tea.Cmd
	for _, ev := range m.inbox.drain() {
		switch ev := ev.(type) {
		case sectiongrid.SelectionChanged:
			m.count = ev.Count
		case sectiongrid.LimitReached:
			cmd = m.showNotice(fmt.Sprintf("Selection limit reached (%d)", ev.Limit))
		}
	}
	m.sync()
	return cmd
}

func (m *Model) showNotice(text string) tea.Cmd {
	m.noticeID++
	m.notice = text
	id := m.noticeID
	return tea.Tick(m.noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

func (m *Model) copySelection() tea.Cmd {
	if m.clipboard == nil {
		return nil
	}
	names := sectiongrid.Names(m.selector.Selection())
	if err := m.clipboard.Copy(strings.Join(names, "\n")); err != nil {
		return m.showNotice("Copy failed: " + err.Error())
	}
	return m.showNotice(fmt.Sprintf("Copied %d items", len(names)))
}

// sync refreshes the render snapshot from the selector.
func (m *Model) sync() {
	m.sections = m.selector.Sections()
	m.limit = m.selector.Limit()
	m.count = sectiongrid.CountSelected(m.sections)
}

func (m Model) grid() grid {
	return newGrid(m.sections, m.columns)
}

func (m *Model) clampCursor() {
	m.cursor, m.hasCursor = m.grid().clamp(m.cursor)
}

// refresh re-renders the grid into the viewport and scrolls the cursor row
// into view.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	content, cursorLine := renderGrid(renderConfig{
		sections:  m.sections,
		styles:    m.styles,
		renderer:  m.renderer,
		width:     m.width,
		columns:   m.columns,
		cursor:    m.cursor,
		hasCursor: m.hasCursor,
	})
	m.viewport.SetContent(content)

	if !m.hasCursor {
		return
	}
	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if bottom := cursorLine + cellHeight; bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.statusBar(),
		m.help.View(m.keymap),
	)
}

func (m Model) statusBar() string {
	status := styleFromColorPair(m.styles.Status, m.renderer)
	text := fmt.Sprintf(" %d selected", m.count)
	if n, bounded := m.limit.Max(); bounded {
		text = fmt.Sprintf(" %d/%d selected", m.count, n)
	}
	if len(m.sections) == 0 {
		text = " No items"
	}
	bar := status.Render(text + " ")
	if m.notice != "" {
		notice := styleFromColorPair(m.styles.Notice, m.renderer).Bold(true)
		bar += " " + notice.Render(" "+m.notice+" ")
	}
	return bar
}

// defaultStyles returns the styles used when no theme is configured.
func defaultStyles() sectiongrid.Styles {
	return sectiongrid.Styles{
		Header:       sectiongrid.ColorPair{Foreground: "#9399b2"},
		Footer:       sectiongrid.ColorPair{Foreground: "#45475a"},
		Item:         sectiongrid.ColorPair{Foreground: "#cdd6f4"},
		SelectedItem: sectiongrid.ColorPair{Foreground: "#ffffff", Background: "#2e84fa"},
		Border:       sectiongrid.ColorPair{Foreground: "#45475a"},
		Cursor:       sectiongrid.ColorPair{Foreground: "#f9e2af"},
		Status:       sectiongrid.ColorPair{Foreground: "#a6adc8", Background: "#313244"},
		Notice:       sectiongrid.ColorPair{Foreground: "#1e1e2e", Background: "#f38ba8"},
	}
}

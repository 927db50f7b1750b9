package sectiongrid

import "sync"

// ToggleResult describes the outcome of a Toggle call.
type ToggleResult int

// Toggle outcomes.
const (
	Deselected ToggleResult = iota
	Selected
	Blocked // Selecting would exceed the limit; nothing changed
)

func (r ToggleResult) String() string {
	switch r {
	case Deselected:
		return "deselected"
	case Selected:
		return "selected"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// SelectionChanged is emitted after every mutation of the sections.
// Items always holds the full flattened selection, never a diff.
type SelectionChanged struct {
	Items   []Item
	Count   int
	Version uint64
}

// LimitReached is emitted when a toggle-to-select is rejected by the limit.
type LimitReached struct {
	At    Coordinate
	Limit int
}

// Selector owns the live sections and mediates every change to them.
// All methods are safe for concurrent use. Event handlers run synchronously on
// the calling goroutine after the state change, in subscription order.
type Selector struct {
	mu       sync.Mutex
	sections []Section
	limit    Limit
	version  uint64

	selectionChanged emitter[SelectionChanged]
	limitReached     emitter[LimitReached]
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithLimit sets the initial selection limit.
func WithLimit(l Limit) SelectorOption {
	return func(s *Selector) {
		s.limit = l
	}
}

// WithSections sets the initial sections. No event is emitted since nothing
// can be subscribed yet.
func WithSections(sections []Section) SelectorOption {
	return func(s *Selector) {
		s.sections = CloneSections(sections)
	}
}

// NewSelector creates a new Selector.
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnSelectionChanged registers fn for selection changes and returns a function
// that removes it.
func (s *Selector) OnSelectionChanged(fn func(SelectionChanged)) (unsubscribe func()) {
	return s.selectionChanged.subscribe(fn)
}

// OnLimitReached registers fn for blocked selections and returns a function
// that removes it.
func (s *Selector) OnLimitReached(fn func(LimitReached)) (unsubscribe func()) {
	return s.limitReached.subscribe(fn)
}

// ReplaceSections discards the current sections and all selection state,
// stores a copy of sections, and emits SelectionChanged. Items pre-seeded as
// selected stay selected even when they exceed the limit.
func (s *Selector) ReplaceSections(sections []Section) {
	s.mu.Lock()
	s.sections = CloneSections(sections)
	ev := s.changedLocked()
	s.mu.Unlock()

	s.selectionChanged.emit(ev)
}

// SetLimit changes the limit applied to future selections. Lowering the limit
// below the current count does not deselect anything; it only blocks new
// selections until enough items are deselected.
func (s *Selector) SetLimit(l Limit) {
	s.mu.Lock()
	s.limit = l
	s.mu.Unlock()
}

// Toggle flips the selected flag of the item at c. Deselecting always
// succeeds. Selecting succeeds only when the limit allows one more item;
// otherwise nothing changes and LimitReached is emitted instead of
// SelectionChanged. An out-of-range c returns a *CoordinateError and emits
// nothing.
func (s *Selector) Toggle(c Coordinate) (ToggleResult, error) {
	s.mu.Lock()
	if err := validateCoordinate(s.sections, c); err != nil {
		s.mu.Unlock()
		return 0, err
	}

	item := &s.sections[c.Section].Items[c.Item]
	if !item.Selected && !s.limit.Allows(CountSelected(s.sections)) {
		n, _ := s.limit.Max()
		s.mu.Unlock()
		s.limitReached.emit(LimitReached{At: c, Limit: n})
		return Blocked, nil
	}

	item.Selected = !item.Selected
	result := Deselected
	if item.Selected {
		result = Selected
	}
	ev := s.changedLocked()
	s.mu.Unlock()

	s.selectionChanged.emit(ev)
	return result, nil
}

// Sections returns a copy of the current sections.
func (s *Selector) Sections() []Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CloneSections(s.sections)
}

// Selection returns the flattened selection.
func (s *Selector) Selection() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FlattenSelected(s.sections)
}

// SelectedCount returns the number of selected items.
func (s *Selector) SelectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CountSelected(s.sections)
}

// Limit returns the current limit.
func (s *Selector) Limit() Limit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limit
}

// Version returns a counter that increases with every change to the sections.
func (s *Selector) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// changedLocked bumps the version and builds the event. s.mu must be held.
func (s *Selector) changedLocked() SelectionChanged {
	s.version++
	items := FlattenSelected(s.sections)
	return SelectionChanged{Items: items, Count: len(items), Version: s.version}
}

// emitter is an ordered list of handlers for one event type.
type emitter[T any] struct {
	mu       sync.Mutex
	nextID   int
	handlers []handler[T]
}

type handler[T any] struct {
	id int
	fn func(T)
}

func (e *emitter[T]) subscribe(fn func(T)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, handler[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { e.unsubscribe(id) })
	}
}

func (e *emitter[T]) unsubscribe(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, h := range e.handlers {
		if h.id == id {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// emit calls every handler registered at the time of the call. Handlers may
// subscribe, unsubscribe or call back into the Selector.
func (e *emitter[T]) emit(v T) {
	e.mu.Lock()
	handlers := append([]handler[T](nil), e.handlers...)
	e.mu.Unlock()

	for _, h := range handlers {
		h.fn(v)
	}
}

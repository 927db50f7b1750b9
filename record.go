package sectiongrid

import "time"

// SelectionRecord is a persisted selection result.
type SelectionRecord struct {
	Items   []Item    `json:"items"`
	Limit   *int      `json:"limit"` // nil when unlimited
	SavedAt time.Time `json:"saved_at"`
}

// NewSelectionRecord captures the current selection of sel.
func NewSelectionRecord(sel *Selector, now time.Time) SelectionRecord {
	return SelectionRecord{
		Items:   sel.Selection(),
		Limit:   sel.Limit().Ptr(),
		SavedAt: now.UTC(),
	}
}

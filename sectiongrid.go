// Package sectiongrid provides domain types for a sectioned selection grid.
package sectiongrid

import "context"

// Item is a single selectable entry within a section.
// Items have no identity beyond their Coordinate.
type Item struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// Section groups items under a header.
type Section struct {
	Header string `json:"header"`
	Footer string `json:"footer,omitempty"` // Optional text rendered below the items
	Items  []Item `json:"items"`
}

// SelectedItems returns a copy of the section containing only selected items,
// in their original order.
func (s Section) SelectedItems() Section {
	out := Section{Header: s.Header, Footer: s.Footer, Items: []Item{}}
	for _, item := range s.Items {
		if item.Selected {
			out.Items = append(out.Items, item)
		}
	}
	return out
}

// Coordinate addresses an item by section index and item index.
type Coordinate struct {
	Section int `json:"section"`
	Item    int `json:"item"`
}

// SelectedItems returns one entry per section holding that section's selected
// items. Sections without selected items are kept with an empty item list.
func SelectedItems(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s.SelectedItems()
	}
	return out
}

// FlattenSelected returns all selected items in section-major, item-minor order.
func FlattenSelected(sections []Section) []Item {
	items := []Item{}
	for _, s := range sections {
		for _, item := range s.Items {
			if item.Selected {
				items = append(items, item)
			}
		}
	}
	return items
}

// CountSelected returns the number of selected items across all sections.
func CountSelected(sections []Section) int {
	n := 0
	for _, s := range sections {
		for _, item := range s.Items {
			if item.Selected {
				n++
			}
		}
	}
	return n
}

// CloneSections returns a deep copy of sections.
func CloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s
		out[i].Items = append([]Item(nil), s.Items...)
	}
	return out
}

// Names returns the names of items in order.
func Names(items []Item) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

// SectionLoader loads sections from a source.
type SectionLoader interface {
	Load(path string) ([]Section, error)
}

// SelectionSaver persists a selection result.
type SelectionSaver interface {
	Save(path string, rec SelectionRecord) error
}

// Viewer presents the selector to a user and blocks until they are done.
// Implementations return ErrCancelled when the user quits without confirming.
type Viewer interface {
	View(ctx context.Context, sel *Selector) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

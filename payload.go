package sectiongrid

// Payload is the content of one rendering slot in the grid.
// It is implemented by HeaderPayload, ItemPayload and FooterPayload only.
type Payload interface {
	payload()
}

// HeaderPayload is the title row of a section.
type HeaderPayload struct {
	Section int
	Title   string
}

// ItemPayload is one selectable cell.
type ItemPayload struct {
	At   Coordinate
	Item Item
}

// FooterPayload closes a section. Text may be empty, in which case renderers
// draw a plain separator.
type FooterPayload struct {
	Section int
	Text    string
}

func (HeaderPayload) payload() {}
func (ItemPayload) payload()   {}
func (FooterPayload) payload() {}

// Renderer renders a single payload.
type Renderer interface {
	Render(p Payload) string
}

// Payloads lays out sections as a flat sequence of rendering slots: for each
// section a header, its items in order, then a footer.
func Payloads(sections []Section) []Payload {
	var out []Payload
	for si, s := range sections {
		out = append(out, HeaderPayload{Section: si, Title: s.Header})
		for ii, item := range s.Items {
			out = append(out, ItemPayload{At: Coordinate{Section: si, Item: ii}, Item: item})
		}
		out = append(out, FooterPayload{Section: si, Text: s.Footer})
	}
	return out
}

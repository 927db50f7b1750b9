package mock

import "github.com/fwojciec/sectiongrid"

// Compile-time interface verification.
var _ sectiongrid.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of sectiongrid.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

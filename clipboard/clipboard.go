// Package clipboard provides clipboard operations via the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/fwojciec/sectiongrid"
)

// Ensure System implements the Clipboard interface.
var _ sectiongrid.Clipboard = (*System)(nil)

// System implements Clipboard using the platform clipboard
// (pbcopy, xclip/xsel/wl-copy or the Windows API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard backend was found.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	return clipboard.WriteAll(content)
}

package mock

import (
	"context"

	"github.com/fwojciec/sectiongrid"
)

// Compile-time interface verification.
var _ sectiongrid.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of sectiongrid.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, sel *sectiongrid.Selector) error
}

func (v *Viewer) View(ctx context.Context, sel *sectiongrid.Selector) error {
	return v.ViewFn(ctx, sel)
}

package mock

import (
	"context"

	"github.com/rfandrade/roteiro"
)

// Compile-time interface verification.
var _ roteiro.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of roteiro.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, doc roteiro.Document) error
}

func (v *Viewer) View(ctx context.Context, doc roteiro.Document) error {
	return v.ViewFn(ctx, doc)
}

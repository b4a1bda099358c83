package mock

import (
	"context"

	"github.com/rfandrade/roteiro"
)

// Compile-time interface verification.
var _ roteiro.BlockAdapter = (*BlockAdapter)(nil)

// BlockAdapter is a mock implementation of roteiro.BlockAdapter.
type BlockAdapter struct {
	AdaptFn func(ctx context.Context, stage roteiro.Stage, original string, tone roteiro.ToneBand) (*roteiro.AdaptedText, error)
}

func (a *BlockAdapter) Adapt(ctx context.Context, stage roteiro.Stage, original string, tone roteiro.ToneBand) (*roteiro.AdaptedText, error) {
	return a.AdaptFn(ctx, stage, original, tone)
}

package mock

import (
	"context"

	"github.com/rfandrade/roteiro"
)

// Compile-time interface verification.
var _ roteiro.RubricJudge = (*RubricJudge)(nil)

// RubricJudge is a mock implementation of roteiro.RubricJudge.
type RubricJudge struct {
	JudgeFn func(ctx context.Context, criterion, output string) (*roteiro.RubricResult, error)
}

func (j *RubricJudge) Judge(ctx context.Context, criterion, output string) (*roteiro.RubricResult, error) {
	return j.JudgeFn(ctx, criterion, output)
}

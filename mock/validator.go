package mock

import (
	"context"

	"github.com/rfandrade/roteiro"
)

// Compile-time interface verification.
var _ roteiro.Validator = (*Validator)(nil)

// Validator is a mock implementation of roteiro.Validator.
type Validator struct {
	ValidateFn func(ctx context.Context, doc roteiro.Document) (*roteiro.ValidationResult, error)
}

func (v *Validator) Validate(ctx context.Context, doc roteiro.Document) (*roteiro.ValidationResult, error) {
	return v.ValidateFn(ctx, doc)
}

package mock

import "github.com/rfandrade/roteiro"

// Compile-time interface verification.
var _ roteiro.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of roteiro.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

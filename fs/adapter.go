package fs

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rfandrade/roteiro"
)

// Compile-time interface verification.
var _ roteiro.BlockAdapter = (*CachedAdapter)(nil)

// CachedAdapter wraps a BlockAdapter with a filesystem cache so repeated
// runs over the same script don't re-pay for API calls.
type CachedAdapter struct {
	adapter roteiro.BlockAdapter
	dir     string
}

// NewCachedAdapter creates a CachedAdapter storing entries under dir.
func NewCachedAdapter(adapter roteiro.BlockAdapter, dir string) *CachedAdapter {
	return &CachedAdapter{adapter: adapter, dir: dir}
}

// Adapt returns the cached rewrite when present, otherwise delegates and
// caches the result. Cache failures are best-effort: a broken cache never
// fails the adaptation itself.
func (c *CachedAdapter) Adapt(ctx context.Context, stage roteiro.Stage, original string, tone roteiro.ToneBand) (*roteiro.AdaptedText, error) {
	path := c.cachePath(stage, original, tone)

	if data, err := os.ReadFile(path); err == nil {
		var cached roteiro.AdaptedText
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	adapted, err := c.adapter.Adapt(ctx, stage, original, tone)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(adapted); err == nil {
		if err := os.MkdirAll(c.dir, 0o755); err == nil {
			_ = os.WriteFile(path, data, 0o644)
		}
	}

	return adapted, nil
}

// cachePath derives a stable filename from everything that shapes the
// rewrite: the stage, the original text, and the tone direction.
func (c *CachedAdapter) cachePath(stage roteiro.Stage, original string, tone roteiro.ToneBand) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%s", stage.String(), original, tone.Tone, tone.Recommendation)
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", h.Sum(nil)))
}

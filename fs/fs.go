// Package fs provides filesystem helpers and a cached BlockAdapter.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultCacheDir returns the default cache directory for roteiro.
// Uses XDG_CACHE_HOME if set, otherwise falls back to ~/.cache/roteiro,
// or system temp directory if home is unavailable.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "roteiro")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "roteiro")
	}
	return filepath.Join(home, ".cache", "roteiro")
}

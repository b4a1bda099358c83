// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/rfandrade/roteiro"
)

// Ensure System implements the Clipboard interface.
var _ roteiro.Clipboard = (*System)(nil)

// copyCommands are the platform copy commands in preference order.
var copyCommands = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
}

// System implements Clipboard using whichever platform command is
// available: pbcopy on macOS, wl-copy on Wayland, xclip on X11.
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	for _, args := range copyCommands {
		if _, err := exec.LookPath(args[0]); err != nil {
			continue
		}
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdin = strings.NewReader(content)
		return cmd.Run()
	}
	return fmt.Errorf("clipboard: no copy command found (tried pbcopy, wl-copy, xclip)")
}

// Package lipgloss provides theme implementations using the Lipgloss
// styling library.
package lipgloss

import "github.com/rfandrade/roteiro"

// Compile-time interface verification.
var _ roteiro.Theme = (*Theme)(nil)

// Theme implements roteiro.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles roteiro.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() roteiro.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds
// (Catppuccin Mocha).
func DarkTheme() *Theme {
	return &Theme{
		styles: roteiro.Styles{
			Title: roteiro.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Metadata: roteiro.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Legend: roteiro.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			StageHeader: roteiro.ColorPair{
				Foreground: "#cba6f7", // Mauve
			},
			Narration: roteiro.ColorPair{
				Foreground: "#cdd6f4", // Base text
			},
			Quote: roteiro.ColorPair{
				Foreground: "#a6e3a1", // Green, spoken lines stand out
			},
			ClosingNote: roteiro.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			ScoreLow: roteiro.ColorPair{
				Foreground: "#f38ba8", // Red
			},
			ScoreLowMid: roteiro.ColorPair{
				Foreground: "#fab387", // Peach
			},
			ScoreMid: roteiro.ColorPair{
				Foreground: "#f9e2af", // Yellow
			},
			ScoreHigh: roteiro.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			AdaptedHighlight: roteiro.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#a6e3a1",
			},
			OriginalHighlight: roteiro.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f38ba8",
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds
// (Catppuccin Latte).
func LightTheme() *Theme {
	return &Theme{
		styles: roteiro.Styles{
			Title: roteiro.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			Metadata: roteiro.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			Legend: roteiro.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			StageHeader: roteiro.ColorPair{
				Foreground: "#8839ef", // Mauve
			},
			Narration: roteiro.ColorPair{
				Foreground: "#4c4f69", // Base text
			},
			Quote: roteiro.ColorPair{
				Foreground: "#40a02b", // Green
			},
			ClosingNote: roteiro.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			ScoreLow: roteiro.ColorPair{
				Foreground: "#d20f39", // Red
			},
			ScoreLowMid: roteiro.ColorPair{
				Foreground: "#fe640b", // Orange
			},
			ScoreMid: roteiro.ColorPair{
				Foreground: "#df8e1d", // Yellow
			},
			ScoreHigh: roteiro.ColorPair{
				Foreground: "#40a02b", // Green
			},
			AdaptedHighlight: roteiro.ColorPair{
				Foreground: "#ffffff",
				Background: "#40a02b",
			},
			OriginalHighlight: roteiro.ColorPair{
				Foreground: "#ffffff",
				Background: "#d20f39",
			},
		},
	}
}

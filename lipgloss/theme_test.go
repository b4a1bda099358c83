package lipgloss_test

import (
	"testing"

	"github.com/rfandrade/roteiro"
	"github.com/rfandrade/roteiro/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.DarkTheme(), lipgloss.DefaultTheme())
}

func TestThemes_StylesComplete(t *testing.T) {
	t.Parallel()

	themes := map[string]*lipgloss.Theme{
		"dark":  lipgloss.DarkTheme(),
		"light": lipgloss.LightTheme(),
	}

	for name, theme := range themes {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			styles := theme.Styles()

			assert.NotEmpty(t, styles.Title.Foreground)
			assert.NotEmpty(t, styles.StageHeader.Foreground)
			assert.NotEmpty(t, styles.Quote.Foreground)
			for _, color := range []roteiro.BandColor{
				roteiro.BandLow, roteiro.BandLowMid, roteiro.BandMid, roteiro.BandHigh,
			} {
				assert.NotEmpty(t, styles.ForBand(color).Foreground)
			}
			assert.NotEmpty(t, styles.AdaptedHighlight.Background)
			assert.NotEmpty(t, styles.OriginalHighlight.Background)
		})
	}
}

func TestThemes_BandColorsDistinct(t *testing.T) {
	t.Parallel()

	styles := lipgloss.DarkTheme().Styles()

	seen := map[string]bool{}
	for _, color := range []roteiro.BandColor{
		roteiro.BandLow, roteiro.BandLowMid, roteiro.BandMid, roteiro.BandHigh,
	} {
		fg := styles.ForBand(color).Foreground
		assert.False(t, seen[fg], "band colors must be distinguishable")
		seen[fg] = true
	}
}

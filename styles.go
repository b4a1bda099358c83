package roteiro

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format. Empty strings are
// valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for every visual element of a rendered
// script.
type Styles struct {
	Title       ColorPair // Title banner
	Metadata    ColorPair // Metadata banner lines
	Legend      ColorPair // Structure-overview paragraph
	StageHeader ColorPair // Stage block headers
	Narration   ColorPair // Narration text inside stage blocks
	Quote       ColorPair // Quoted spoken lines inside stage blocks
	ClosingNote ColorPair // Improvement-suggestion / prompt paragraphs

	ScoreLow    ColorPair // Quality band < 4
	ScoreLowMid ColorPair // Quality band [4, 6)
	ScoreMid    ColorPair // Quality band [6, 8)
	ScoreHigh   ColorPair // Quality band [8, 10]

	AdaptedHighlight  ColorPair // Changed spans in adapted text
	OriginalHighlight ColorPair // Changed spans in original text
}

// ForBand returns the score style for a quality band color.
func (s Styles) ForBand(color BandColor) ColorPair {
	switch color {
	case BandLow:
		return s.ScoreLow
	case BandLowMid:
		return s.ScoreLowMid
	case BandMid:
		return s.ScoreMid
	default:
		return s.ScoreHigh
	}
}

// Theme provides styles for rendering scripts. Different implementations
// can provide light/dark variants.
type Theme interface {
	Styles() Styles
}

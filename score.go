package roteiro

import "math"

// BandColor is the qualitative color class of a quality band.
type BandColor int

// Band colors, ordered from weakest to strongest.
const (
	BandLow BandColor = iota
	BandLowMid
	BandMid
	BandHigh
)

// Band pairs a color class with its quality label.
type Band struct {
	Color BandColor
	Label string
}

// ClampScore forces a score into [0, 10]. Upstream scores are trusted but
// not guaranteed in range; callers that observe a clamp should warn.
func ClampScore(score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// QualityBand maps a score onto one of four ordered quality bands with
// boundaries at 4, 6 and 8. Lower bounds are inclusive; only the top band
// includes its upper bound. Every score resolves to exactly one band.
func QualityBand(score float64) Band {
	score = ClampScore(score)
	switch {
	case score < 4:
		return Band{BandLow, "Precisa melhorar"}
	case score < 6:
		return Band{BandLowMid, "Regular"}
	case score < 8:
		return Band{BandMid, "Bom"}
	default:
		return Band{BandHigh, "Excelente"}
	}
}

package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rfandrade/roteiro"
)

// renderConfig holds all rendering parameters for renderScript.
type renderConfig struct {
	doc        roteiro.Document
	validation *roteiro.ValidationResult
	session    *roteiro.AdaptationSession
	styles     roteiro.Styles
	renderer   *lipgloss.Renderer
	width      int
	wordDiffer roteiro.WordDiffer
}

// renderScript converts a parsed script to a styled string.
// If renderer is nil, the default lipgloss renderer is used.
func renderScript(cfg renderConfig) string {
	styles := cfg.styles
	renderer := cfg.renderer

	titleStyle := styleFromColorPair(styles.Title, renderer)
	metadataStyle := styleFromColorPair(styles.Metadata, renderer)
	legendStyle := styleFromColorPair(styles.Legend, renderer)
	headerStyle := styleFromColorPair(styles.StageHeader, renderer)
	narrationStyle := styleFromColorPair(styles.Narration, renderer)
	quoteStyle := styleFromColorPair(styles.Quote, renderer)
	closingStyle := styleFromColorPair(styles.ClosingNote, renderer)

	var sb strings.Builder

	if cfg.validation != nil {
		sb.WriteString(renderScorecard(cfg))
		sb.WriteString("\n")
	}

	for _, section := range cfg.doc.Sections {
		switch section.Kind {
		case roteiro.KindTitleBanner:
			sb.WriteString(titleStyle.Render(section.Text))
		case roteiro.KindMetadataBanner:
			sb.WriteString(metadataStyle.Render(section.Text))
		case roteiro.KindStructureLegend:
			sb.WriteString(legendStyle.Render(section.Text))
		case roteiro.KindStageBlock:
			sb.WriteString(renderStageBlock(cfg, section, headerStyle, narrationStyle, quoteStyle))
		case roteiro.KindClosingNote:
			sb.WriteString(closingStyle.Render(section.Text))
		default:
			sb.WriteString(narrationStyle.Render(section.Text))
		}
		sb.WriteString("\n\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// renderScorecard renders the per-criterion scores with band colors plus
// the tone direction derived from the overall score.
func renderScorecard(cfg renderConfig) string {
	v := cfg.validation
	styles := cfg.styles
	renderer := cfg.renderer

	scoreFor := func(label string, score float64) string {
		band := roteiro.QualityBand(score)
		style := styleFromColorPair(styles.ForBand(band.Color), renderer)
		return style.Render(fmt.Sprintf("%s %.1f", label, roteiro.ClampScore(score)))
	}

	parts := []string{
		scoreFor("Gancho", v.Hook),
		scoreFor("Clareza", v.Clarity),
		scoreFor("Emoção", v.Emotion),
		scoreFor("CTA", v.CTA),
	}

	totalBand := roteiro.QualityBand(v.Total)
	totalStyle := styleFromColorPair(styles.ForBand(totalBand.Color), renderer)
	total := totalStyle.Render(fmt.Sprintf("Nota geral %.1f (%s)", roteiro.ClampScore(v.Total), totalBand.Label))

	tone := roteiro.ToneForScore(v.Total)
	toneStyle := styleFromColorPair(styles.Legend, renderer)

	var sb strings.Builder
	sb.WriteString(strings.Join(parts, "  ·  "))
	sb.WriteString("\n")
	sb.WriteString(total)
	sb.WriteString("\n")
	sb.WriteString(toneStyle.Render(fmt.Sprintf("Tom: %s — %s", tone.Tone, tone.Recommendation)))
	sb.WriteString("\n")
	return sb.String()
}

// renderStageBlock renders one stage paragraph, swapping in the adapted
// text when the session rewrote it and showing a side-by-side comparison
// when comparison mode is on.
func renderStageBlock(cfg renderConfig, section roteiro.Section, headerStyle, narrationStyle, quoteStyle lipgloss.Style) string {
	var sb strings.Builder

	header := section.Stage.Label()
	if cfg.validation != nil {
		score := cfg.validation.ScoreFor(section.Stage)
		band := roteiro.QualityBand(score)
		badge := styleFromColorPair(cfg.styles.ForBand(band.Color), cfg.renderer)
		header = header + " " + badge.Render(fmt.Sprintf("[%.1f]", roteiro.ClampScore(score)))
	}
	sb.WriteString(headerStyle.Render("▸ " + header))
	sb.WriteString("\n")

	var block roteiro.AdaptedBlock
	var ok bool
	if cfg.session != nil {
		block, ok = cfg.session.Block(section.Stage)
	}

	if !ok || !block.IsAdapted() {
		sb.WriteString(renderQuoted(section.Text, section.Quotes, narrationStyle, quoteStyle))
		return sb.String()
	}

	if cfg.session.ComparisonVisible() {
		sb.WriteString(renderComparison(cfg, block, narrationStyle))
		return sb.String()
	}

	sb.WriteString(renderQuoted(block.Adapted, roteiro.QuotedRuns(block.Adapted), narrationStyle, quoteStyle))
	if block.ToneNote != "" {
		note := styleFromColorPair(cfg.styles.Legend, cfg.renderer)
		sb.WriteString("\n")
		sb.WriteString(note.Render("↳ " + block.ToneNote))
	}
	return sb.String()
}

// renderComparison renders the original and adapted versions of a block
// with word-level change highlighting when a WordDiffer is configured.
func renderComparison(cfg renderConfig, block roteiro.AdaptedBlock, narrationStyle lipgloss.Style) string {
	originalLabel := styleFromColorPair(cfg.styles.OriginalHighlight, cfg.renderer).Render(" antes ")
	adaptedLabel := styleFromColorPair(cfg.styles.AdaptedHighlight, cfg.renderer).Render(" depois ")

	var originalBody, adaptedBody string
	if cfg.wordDiffer != nil {
		oldSpans, newSpans := cfg.wordDiffer.Diff(block.Original, block.Adapted)
		originalBody = renderSpans(oldSpans, narrationStyle, styleFromColorPair(cfg.styles.OriginalHighlight, cfg.renderer))
		adaptedBody = renderSpans(newSpans, narrationStyle, styleFromColorPair(cfg.styles.AdaptedHighlight, cfg.renderer))
	} else {
		originalBody = narrationStyle.Render(block.Original)
		adaptedBody = narrationStyle.Render(block.Adapted)
	}

	var sb strings.Builder
	sb.WriteString(originalLabel)
	sb.WriteString("\n")
	sb.WriteString(originalBody)
	sb.WriteString("\n")
	sb.WriteString(adaptedLabel)
	sb.WriteString("\n")
	sb.WriteString(adaptedBody)
	return sb.String()
}

// renderSpans styles changed spans with the highlight style and the rest
// with the base style.
func renderSpans(spans []roteiro.Span, base, highlight lipgloss.Style) string {
	var sb strings.Builder
	for _, span := range spans {
		if span.Changed {
			sb.WriteString(highlight.Render(span.Text))
		} else {
			sb.WriteString(base.Render(span.Text))
		}
	}
	return sb.String()
}

// renderQuoted styles quoted spoken lines differently from narration,
// using the byte offsets recorded during segmentation.
func renderQuoted(text string, quotes []roteiro.QuotedRun, narrationStyle, quoteStyle lipgloss.Style) string {
	if len(quotes) == 0 {
		return narrationStyle.Render(text)
	}

	var sb strings.Builder
	pos := 0
	for _, q := range quotes {
		if q.Start < pos || q.End > len(text) {
			continue
		}
		if q.Start > pos {
			sb.WriteString(narrationStyle.Render(text[pos:q.Start]))
		}
		sb.WriteString(quoteStyle.Render(text[q.Start:q.End]))
		pos = q.End
	}
	if pos < len(text) {
		sb.WriteString(narrationStyle.Render(text[pos:]))
	}
	return sb.String()
}

// exportText produces the plain-text script with adapted blocks substituted,
// suitable for the clipboard.
func exportText(doc roteiro.Document, session *roteiro.AdaptationSession) string {
	var sb strings.Builder
	for i, section := range doc.Sections {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		text := section.Text
		if section.Kind == roteiro.KindStageBlock && session != nil {
			if block, ok := session.Block(section.Stage); ok && block.IsAdapted() {
				text = block.Adapted
			}
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp roteiro.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

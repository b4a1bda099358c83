package roteiro

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var paragraphBreakRe = regexp.MustCompile(`\n[ \t]*\n`)

// legendNeedles mark the structure-overview paragraph the generator emits
// ahead of the stage blocks.
var legendNeedles = []string{
	"estrutura do roteiro",
	"estrutura narrativa",
}

// closingNeedles mark trailing paragraphs with improvement suggestions or
// the generation prompt.
var closingNeedles = []string{
	"sugestões de melhoria",
	"sugestãµes de melhoria",
	"sugestoes de melhoria",
	"prompt de geração",
	"prompt de geraã§ã£o",
	"prompt de geracao",
}

// metadataNeedles identify lines that belong in the metadata banner.
var metadataNeedles = []string{
	"tipo de conteúdo",
	"tipo de conteãºdo",
	"tipo de conteudo",
	"objetivo",
	"tom de voz",
	"público-alvo",
	"pãºblico-alvo",
	"publico-alvo",
}

// SegmentScript splits a raw script on blank-line boundaries and classifies
// each resulting paragraph exactly once, in source order. The title banner
// and metadata banner are each claimed at most once; stage blocks are only
// produced when the whole document has canonical structure, and each stage
// is claimed at most once so a structured document always yields exactly
// four stage blocks. Everything unclaimed falls through to KindPlain.
func SegmentScript(raw string) []Section {
	paragraphs := splitParagraphs(raw)
	if len(paragraphs) == 0 {
		return nil
	}

	structured := HasCanonicalStructure(raw)
	titleClaimed := false
	metadataClaimed := false
	var stageClaimed [4]bool

	sections := make([]Section, 0, len(paragraphs))
	for i, p := range paragraphs {
		lower := strings.ToLower(p)
		sec := Section{Index: i, Kind: KindPlain, Text: p}

		switch {
		case structured && containsAny(lower, legendNeedles):
			sec.Kind = KindStructureLegend
		case structured && claimStage(lower, &stageClaimed, &sec):
			// claimStage filled in Kind, Stage and Quotes.
		case !titleClaimed && titleRe.MatchString(p):
			sec.Kind = KindTitleBanner
			titleClaimed = true
		case !metadataClaimed && containsAny(lower, metadataNeedles):
			sec.Kind = KindMetadataBanner
			sec.Text = metadataLines(p)
			metadataClaimed = true
		case containsAny(lower, closingNeedles):
			sec.Kind = KindClosingNote
		}

		sections = append(sections, sec)
	}
	return sections
}

func splitParagraphs(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var out []string
	for _, p := range paragraphBreakRe.Split(raw, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

// claimStage tags the section as a stage block for the first unclaimed
// stage, in canonical order, whose label appears in the paragraph.
func claimStage(lower string, claimed *[4]bool, sec *Section) bool {
	for _, stage := range Stages() {
		if claimed[stage] {
			continue
		}
		if containsStageLabel(lower, stage) {
			claimed[stage] = true
			sec.Kind = KindStageBlock
			sec.Stage = stage
			sec.Quotes = QuotedRuns(sec.Text)
			return true
		}
	}
	return false
}

// metadataLines keeps only the sub-lines of a metadata paragraph that
// individually match a metadata label, so unrelated prose does not leak
// into the banner.
func metadataLines(paragraph string) string {
	var kept []string
	for _, line := range strings.Split(paragraph, "\n") {
		if containsAny(strings.ToLower(line), metadataNeedles) {
			kept = append(kept, strings.TrimSpace(line))
		}
	}
	return strings.Join(kept, "\n")
}

// QuotedRuns extracts the spoken lines of a block: runs of text wrapped in
// straight or curly double quotes. Runs are returned in source order with
// byte offsets into the block text; an unclosed quote is ignored.
func QuotedRuns(text string) []QuotedRun {
	var runs []QuotedRun
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		var closer rune
		switch r {
		case '"':
			closer = '"'
		case '“':
			closer = '”'
		default:
			i += size
			continue
		}
		inner := i + size
		end := indexRune(text, inner, closer)
		if end < 0 {
			break
		}
		_, closerSize := utf8.DecodeRuneInString(text[end:])
		runs = append(runs, QuotedRun{
			Text:  text[inner:end],
			Start: i,
			End:   end + closerSize,
		})
		i = end + closerSize
	}
	return runs
}

func indexRune(s string, from int, r rune) int {
	idx := strings.IndexRune(s[from:], r)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// Package roteiro parses AI-generated short-video marketing scripts into
// structured documents and tracks the block-level adaptation workflow that
// rewrites weak narrative blocks.
package roteiro

import "context"

// Stage identifies one block of the canonical four-stage narrative template.
type Stage int

// Narrative stages, in canonical order.
const (
	StageIdentification Stage = iota
	StageConflict
	StageTurn
	StageEnding
)

// Stages returns all narrative stages in canonical order.
func Stages() [4]Stage {
	return [4]Stage{StageIdentification, StageConflict, StageTurn, StageEnding}
}

// Label returns the canonical label the upstream generator uses for the
// stage, in the language of the generated scripts.
func (s Stage) Label() string {
	switch s {
	case StageIdentification:
		return "Identificação"
	case StageConflict:
		return "Conflito"
	case StageTurn:
		return "Virada"
	case StageEnding:
		return "Final Marcante"
	default:
		return ""
	}
}

// String returns a stable English name for logs and serialized records.
func (s Stage) String() string {
	switch s {
	case StageIdentification:
		return "identification"
	case StageConflict:
		return "conflict"
	case StageTurn:
		return "turn"
	case StageEnding:
		return "memorable_ending"
	default:
		return "unknown"
	}
}

// SectionKind classifies one paragraph-level unit of a parsed script.
type SectionKind int

// Section kinds.
const (
	KindPlain SectionKind = iota
	KindTitleBanner
	KindMetadataBanner
	KindStructureLegend
	KindStageBlock
	KindClosingNote
)

// QuotedRun is a spoken line inside a stage block: text wrapped in double
// quotes that a renderer may style differently from surrounding narration.
// Start is the byte offset of the opening quote within the section text and
// End is the offset just past the closing quote; Text excludes the quotes.
type QuotedRun struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Section is one classified paragraph of a script.
type Section struct {
	Index  int         `json:"index"`
	Kind   SectionKind `json:"kind"`
	Stage  Stage       `json:"stage"` // valid only when Kind is KindStageBlock
	Text   string      `json:"text"`
	Quotes []QuotedRun `json:"quotes,omitempty"` // populated only for stage blocks
}

// Metadata holds the descriptive fields extracted from a raw script.
// Title is never empty; Objective and ContentType are empty when absent.
type Metadata struct {
	Title       string `json:"title"`
	Objective   string `json:"objective,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// Document is the structured form of a raw script: metadata, the canonical
// structure verdict, and the ordered section sequence. It is a pure
// derivation of Raw and carries no rendering concerns.
type Document struct {
	Raw        string    `json:"raw"`
	Meta       Metadata  `json:"meta"`
	Structured bool      `json:"structured"`
	Sections   []Section `json:"sections"`
}

// ParseScript runs the metadata, structure and segmentation passes over a
// raw script. Each pass is independently callable; this is the composed
// form most callers want.
func ParseScript(raw string) Document {
	return Document{
		Raw:        raw,
		Meta:       ExtractMetadata(raw),
		Structured: HasCanonicalStructure(raw),
		Sections:   SegmentScript(raw),
	}
}

// StageSections returns the stage-block sections in document order.
func (d Document) StageSections() []Section {
	var out []Section
	for _, sec := range d.Sections {
		if sec.Kind == KindStageBlock {
			out = append(out, sec)
		}
	}
	return out
}

// StageText returns the text of the block for the given stage.
func (d Document) StageText(stage Stage) (string, bool) {
	for _, sec := range d.Sections {
		if sec.Kind == KindStageBlock && sec.Stage == stage {
			return sec.Text, true
		}
	}
	return "", false
}

// AdaptedText is the outcome of rewriting a single stage block.
type AdaptedText struct {
	Text     string `json:"adapted_text"`
	ToneNote string `json:"tone_note"`
}

// BlockAdapter produces an adapted rewrite of one stage block. The tone
// band carries the guidance derived from the script's overall score.
type BlockAdapter interface {
	Adapt(ctx context.Context, stage Stage, original string, tone ToneBand) (*AdaptedText, error)
}

// Validator scores a script document against the four quality criteria.
// Scoring is always delegated; the engine never computes scores itself.
type Validator interface {
	Validate(ctx context.Context, doc Document) (*ValidationResult, error)
}

// Clipboard provides copy-to-clipboard functionality for viewers.
type Clipboard interface {
	Copy(content string) error
}

// Viewer displays a parsed script document interactively.
type Viewer interface {
	View(ctx context.Context, doc Document) error
}

// Span is a run of text marked as changed or unchanged by a word-level
// comparison of an original block against its adaptation.
type Span struct {
	Text    string
	Changed bool
}

// WordDiffer computes word-level differences between two prose strings.
type WordDiffer interface {
	// Diff returns spans for both the old and new strings, marking which
	// portions changed between them.
	Diff(old, new string) (oldSpans, newSpans []Span)
}

package roteiro

import (
	"fmt"
	"strings"
)

// PromptFormatter renders a parsed document as structured plain text for
// LLM prompts. Rendering for humans lives in separate consumer packages.
type PromptFormatter interface {
	Format(doc Document) string
}

// DefaultFormatter implements PromptFormatter with the standard format.
type DefaultFormatter struct{}

// Format renders the document as tagged plain text: a context header with
// the extracted metadata followed by the classified sections.
func (f *DefaultFormatter) Format(doc Document) string {
	var sb strings.Builder

	sb.WriteString("<contexto>\n")
	fmt.Fprintf(&sb, "Título: %s\n", doc.Meta.Title)
	if doc.Meta.Objective != "" {
		fmt.Fprintf(&sb, "Objetivo: %s\n", doc.Meta.Objective)
	}
	if doc.Meta.ContentType != "" {
		fmt.Fprintf(&sb, "Tipo de Conteúdo: %s\n", doc.Meta.ContentType)
	}
	if doc.Structured {
		sb.WriteString("Estrutura canônica: sim\n")
	} else {
		sb.WriteString("Estrutura canônica: não\n")
	}
	sb.WriteString("</contexto>\n\n")

	sb.WriteString("<roteiro>\n")
	for _, sec := range doc.Sections {
		fmt.Fprintf(&sb, "--- SEÇÃO %d (%s) ---\n", sec.Index, sectionHeading(sec))
		sb.WriteString(sec.Text)
		if !strings.HasSuffix(sec.Text, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("</roteiro>")

	return sb.String()
}

func sectionHeading(sec Section) string {
	if sec.Kind == KindStageBlock {
		return fmt.Sprintf("%s: %s", KindName(sec.Kind), sec.Stage.Label())
	}
	return KindName(sec.Kind)
}

// KindName returns a stable lower-case name for a section kind.
func KindName(kind SectionKind) string {
	switch kind {
	case KindTitleBanner:
		return "title"
	case KindMetadataBanner:
		return "metadata"
	case KindStructureLegend:
		return "legend"
	case KindStageBlock:
		return "stage"
	case KindClosingNote:
		return "closing"
	default:
		return "plain"
	}
}

package roteiro

import (
	"regexp"
	"strings"
)

// DefaultTitle is the placeholder used when no title pattern matches.
const DefaultTitle = "Roteiro sem título"

var (
	// titleRe captures the free text after "Roteiro", optionally introduced
	// by "sobre"/"para" or a colon, up to the end of the line or the next
	// colon. "🎬 Roteiro sobre Laser X" -> "Laser X". The word must open a
	// line (emoji and punctuation prefixes allowed) so that prose mentions
	// like "Estrutura do Roteiro" are not mistaken for a title.
	titleRe = regexp.MustCompile(`(?im)^[^\w\n]*roteiro(?:\s+sobre|\s+para|\s*:)?\s+([^\n:]+)`)

	// contentTypeRe matches a labeled content-type line. The "Ãº" branch
	// accepts the mis-encoded form of "Conteúdo" that upstream text
	// sometimes arrives with.
	contentTypeRe = regexp.MustCompile(`(?i)tipo de conte(?:ú|Ãº|u)do\s*:\s*([^\n]+)`)
)

// objectiveRule maps accent-tolerant phrase bodies to the canonical
// emoji-prefixed objective label. Needles are lower-case; the first rule
// whose needle appears in the script wins.
type objectiveRule struct {
	canonical string
	needles   []string
}

var objectiveRules = []objectiveRule{
	{"🟡 Atrair Atenção", []string{"atrair atenção", "atrair atenã§ã£o", "atrair atencao"}},
	{"🟢 Criar Conexão", []string{"criar conexão", "criar conexã£o", "criar conexao"}},
	{"🔴 Impulsionar Compra", []string{"impulsionar compra"}},
	{"🟠 Reativar Interesse", []string{"reativar interesse"}},
	{"🔵 Fechar Agora", []string{"fechar agora"}},
}

// ExtractMetadata pulls the title, marketing objective and content type out
// of a raw script using ordered pattern rules. It is a pure function: no
// side effects, never errors, and whitespace-only input yields all
// defaults.
func ExtractMetadata(raw string) Metadata {
	meta := Metadata{Title: DefaultTitle}
	if m := titleRe.FindStringSubmatch(raw); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			meta.Title = title
		}
	}

	lower := strings.ToLower(raw)
	for _, rule := range objectiveRules {
		for _, needle := range rule.needles {
			if strings.Contains(lower, needle) {
				meta.Objective = rule.canonical
				break
			}
		}
		if meta.Objective != "" {
			break
		}
	}

	if m := contentTypeRe.FindStringSubmatch(raw); m != nil {
		meta.ContentType = strings.TrimSpace(m[1])
	}

	return meta
}

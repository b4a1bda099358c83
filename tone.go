package roteiro

import "strings"

// ToneBand maps an overall-score range onto writing-tone guidance. Min and
// Max are both inclusive.
type ToneBand struct {
	Min, Max       float64
	Tone           string
	Recommendation string
}

// toneBands is the closed partition of [0, 10] used for whole-script tone
// guidance. Constructed once, read-only at runtime.
var toneBands = [4]ToneBand{
	{0, 5.9, "Tom encorajador e construtivo", "Reescreva os blocos mais fracos antes de publicar e simplifique a mensagem central."},
	{6.0, 7.4, "Tom claro e objetivo", "Ajuste os trechos apontados nas sugestões e reforce o gancho de abertura."},
	{7.5, 8.9, "Tom confiante e persuasivo", "Refine o ritmo e a carga emocional; o roteiro está quase pronto."},
	{9.0, 10, "Tom inspirador e direto", "Publique como está; ajustes finos são opcionais."},
}

// ToneForScore resolves the tone band for a whole-script score. Scores are
// clamped into [0, 10] first. Scores that land between two bands (only
// possible with more than one decimal of precision) fall back to the
// second band rather than erroring.
func ToneForScore(score float64) ToneBand {
	score = ClampScore(score)
	for _, band := range toneBands {
		if score >= band.Min && score <= band.Max {
			return band
		}
	}
	return toneBands[1]
}

// DefaultImprovementFocus is returned when no rule matches a block label.
const DefaultImprovementFocus = "Otimize a clareza e o impacto da mensagem"

// improvementRules map normalized block-type keys to an improvement focus.
// Resolution is exact key first, then key-contained-in-label, so
// emoji-prefixed labels like "💡 Gancho Inicial" still resolve.
var improvementRules = []struct {
	key   string
	focus string
}{
	{"gancho", "Fortaleça o gancho para prender a atenção nos primeiros segundos"},
	{"identificação", "Fortaleça o gancho para prender a atenção nos primeiros segundos"},
	{"identificaã§ã£o", "Fortaleça o gancho para prender a atenção nos primeiros segundos"},
	{"conflito", "Deixe o problema mais concreto e fácil de reconhecer"},
	{"virada", "Mostre a transformação com um benefício claro e verificável"},
	{"final", "Feche com uma chamada para ação única e urgente"},
	{"cta", "Feche com uma chamada para ação única e urgente"},
}

// ImprovementFocus maps a narrative-block label to an improvement hint.
// Matching is case-insensitive and tolerant of extra words or emoji around
// the stage name.
func ImprovementFocus(label string) string {
	norm := strings.ToLower(strings.TrimSpace(label))
	for _, rule := range improvementRules {
		if norm == rule.key {
			return rule.focus
		}
	}
	for _, rule := range improvementRules {
		if strings.Contains(norm, rule.key) {
			return rule.focus
		}
	}
	return DefaultImprovementFocus
}

package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rfandrade/roteiro"
)

// Compile-time interface verification.
var _ roteiro.Validator = (*Validator)(nil)

// DefaultValidateTimeout is the default timeout for a validation call.
const DefaultValidateTimeout = 60 * time.Second

// Validator implements roteiro.Validator using Google Gemini.
type Validator struct {
	client    GenerativeClient
	model     string
	formatter roteiro.PromptFormatter
	timeout   time.Duration
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithValidateTimeout sets the timeout for API calls.
func WithValidateTimeout(d time.Duration) ValidatorOption {
	return func(v *Validator) {
		v.timeout = d
	}
}

// WithFormatter sets a custom prompt formatter.
func WithFormatter(f roteiro.PromptFormatter) ValidatorOption {
	return func(v *Validator) {
		v.formatter = f
	}
}

// NewValidator creates a new Validator.
func NewValidator(client GenerativeClient, model string, opts ...ValidatorOption) *Validator {
	v := &Validator{
		client:    client,
		model:     model,
		formatter: &roteiro.DefaultFormatter{},
		timeout:   DefaultValidateTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate scores a parsed script against the four quality criteria.
func (v *Validator) Validate(ctx context.Context, doc roteiro.Document) (*roteiro.ValidationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	contents := []*Content{{
		Parts: []*Part{{Text: BuildValidatePrompt(v.formatter.Format(doc))}},
	}}

	resp, err := v.client.GenerateContent(ctx, v.model, contents, BuildValidateConfig())
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: returned nil response")
	}

	var result roteiro.ValidationResult
	if err := json.Unmarshal([]byte(resp.Text), &result); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse response: %w", err)
	}

	return &result, nil
}

// BuildValidatePrompt creates the user prompt for validation.
func BuildValidatePrompt(formattedDoc string) string {
	return fmt.Sprintf(`Avalie o roteiro de vídeo curto de marketing abaixo.

%s

## Critérios (0 a 10 cada)

- **hook**: o bloco de Identificação prende a atenção nos primeiros segundos?
- **clarity**: o problema e a mensagem são claros e fáceis de acompanhar?
- **emotion**: o roteiro cria conexão emocional com o público?
- **cta**: o fechamento tem uma chamada para ação única e convincente?

Calcule também o **total** (média ponderada na sua avaliação, 0 a 10) e
escreva **suggestions** com as melhorias mais importantes em uma frase.`, formattedDoc)
}

// BuildValidateConfig returns the config for validation calls, with a
// response schema so every criterion comes back as a number in range.
func BuildValidateConfig() *GenerateContentConfig {
	temp := float32(0.2) // scoring should be consistent
	score := func(desc string) *Schema {
		return &Schema{Type: "number", Description: desc}
	}
	return &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{
				Text: `Você é um avaliador rigoroso de roteiros de vídeos curtos de marketing.

Pontue cada critério de 0 a 10 com uma casa decimal. Seja consistente:
roteiros medianos ficam entre 6 e 8; reserve notas acima de 9 para blocos
realmente excepcionais.`,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"hook":        score("Força do gancho de abertura"),
				"clarity":     score("Clareza do problema e da mensagem"),
				"cta":         score("Qualidade da chamada para ação"),
				"emotion":     score("Conexão emocional com o público"),
				"total":       score("Nota geral do roteiro"),
				"suggestions": {Type: "string", Description: "Melhorias mais importantes"},
			},
			Required: []string{"hook", "clarity", "cta", "emotion", "total"},
		},
	}
}

// Package gemini implements the adaptation and validation collaborators
// using the Google Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rfandrade/roteiro"
)

// Compile-time interface verification.
var _ roteiro.BlockAdapter = (*Adapter)(nil)

// DefaultAdaptTimeout is the default timeout for a single block rewrite.
const DefaultAdaptTimeout = 60 * time.Second

// Adapter implements roteiro.BlockAdapter using Google Gemini.
type Adapter struct {
	client  GenerativeClient
	model   string
	timeout time.Duration
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithAdaptTimeout sets the timeout for API calls.
func WithAdaptTimeout(d time.Duration) AdapterOption {
	return func(a *Adapter) {
		a.timeout = d
	}
}

// NewAdapter creates a new Adapter.
func NewAdapter(client GenerativeClient, model string, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		client:  client,
		model:   model,
		timeout: DefaultAdaptTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Adapt rewrites one stage block following the tone guidance derived from
// the script's overall score.
func (a *Adapter) Adapt(ctx context.Context, stage roteiro.Stage, original string, tone roteiro.ToneBand) (*roteiro.AdaptedText, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	contents := []*Content{{
		Parts: []*Part{{Text: BuildAdaptPrompt(stage, original, tone)}},
	}}

	resp, err := a.client.GenerateContent(ctx, a.model, contents, BuildAdaptConfig())
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: returned nil response")
	}

	var adapted roteiro.AdaptedText
	if err := json.Unmarshal([]byte(resp.Text), &adapted); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse response: %w", err)
	}

	return &adapted, nil
}

// BuildAdaptPrompt creates the user prompt for a single block rewrite.
func BuildAdaptPrompt(stage roteiro.Stage, original string, tone roteiro.ToneBand) string {
	return fmt.Sprintf(`Reescreva o bloco "%s" de um roteiro de vídeo curto de marketing.

## Bloco original

%s

## Direção de tom

%s. %s

## Tarefa

Reescreva apenas este bloco, mantendo a função narrativa de "%s" dentro da
estrutura Identificação → Conflito → Virada → Final Marcante. Mantenha as
falas entre aspas como falas, preserve o produto e as promessas factuais, e
não invente dados novos.

Responda com JSON neste formato:
{
  "adapted_text": "o bloco reescrito",
  "tone_note": "uma frase explicando o ajuste de tom aplicado"
}`, stage.Label(), original, tone.Tone, tone.Recommendation, stage.Label())
}

// BuildAdaptConfig returns the config for block-rewrite calls.
func BuildAdaptConfig() *GenerateContentConfig {
	temp := float32(0.7) // rewrites should stay creative
	return &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{
				Text: `Você é um copywriter especializado em roteiros de vídeos curtos de marketing.

Seu papel é reescrever blocos narrativos fracos sem mudar a função do bloco
na estrutura do roteiro, seguindo a direção de tom recebida. Seja direto,
concreto e natural para narração em voz alta.`,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

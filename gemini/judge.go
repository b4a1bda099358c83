package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rfandrade/roteiro"
)

// Compile-time interface verification.
var _ roteiro.RubricJudge = (*Judge)(nil)

// DefaultJudgeTimeout is the default timeout for a rubric evaluation.
const DefaultJudgeTimeout = 60 * time.Second

// Judge implements roteiro.RubricJudge using Google Gemini.
type Judge struct {
	client  GenerativeClient
	model   string
	timeout time.Duration
}

// NewJudge creates a new Judge.
func NewJudge(client GenerativeClient, model string) *Judge {
	return &Judge{
		client:  client,
		model:   model,
		timeout: DefaultJudgeTimeout,
	}
}

// Judge evaluates whether the output satisfies the given criterion.
func (j *Judge) Judge(ctx context.Context, criterion, output string) (*roteiro.RubricResult, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Avalie se o texto abaixo satisfaz o critério.

## Critério

%s

## Texto

%s`, criterion, output)

	contents := []*Content{{Parts: []*Part{{Text: prompt}}}}

	resp, err := j.client.GenerateContent(ctx, j.model, contents, judgeConfig())
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: returned nil response")
	}

	var result roteiro.RubricResult
	if err := json.Unmarshal([]byte(resp.Text), &result); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse response: %w", err)
	}

	return &result, nil
}

func judgeConfig() *GenerateContentConfig {
	temp := float32(0.0)
	return &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{
				Text: "Você é um avaliador objetivo. Julgue apenas o critério pedido e explique o veredito em uma ou duas frases.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"passed":    {Type: "boolean", Description: "O texto satisfaz o critério"},
				"reasoning": {Type: "string", Description: "Justificativa do veredito"},
			},
			Required: []string{"passed", "reasoning"},
		},
	}
}

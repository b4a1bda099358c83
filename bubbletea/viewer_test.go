package bubbletea_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	charm "github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/rfandrade/roteiro"
	"github.com/rfandrade/roteiro/bubbletea"
	"github.com/rfandrade/roteiro/lipgloss"
	"github.com/rfandrade/roteiro/mock"
	"github.com/rfandrade/roteiro/worddiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *charm.Renderer {
	r := charm.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func sampleDoc() roteiro.Document {
	return roteiro.ParseScript(`🎬 Roteiro sobre Laser X

🟢 Objetivo: Criar Conexão
Tipo de Conteúdo: Story

📋 Estrutura do Roteiro: Identificação → Conflito → Virada → Final Marcante

Identificação: Você abre o vídeo dizendo "meu cabelo vivia escondido".

Conflito: O problema cresce e nada resolve.

Virada: Então você conhece o Laser X.

Final Marcante: "Agende hoje" e mostre o resultado.`)
}

func sampleValidation() *roteiro.ValidationResult {
	return &roteiro.ValidationResult{Hook: 9.2, Clarity: 7.0, CTA: 6.5, Emotion: 8.8, Total: 7.9}
}

func TestScriptModel_Init(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewScriptModel(sampleDoc())
	assert.Nil(t, m.Init(), "Init should return nil command")
}

func TestScriptModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewScriptModel(sampleDoc())
	assert.Contains(t, m.View(), "Loading", "View should show loading state before WindowSizeMsg")
}

func TestScriptModel_RendersStages(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewScriptModel(sampleDoc(),
		bubbletea.WithScriptRenderer(trueColorRenderer()),
		bubbletea.WithScriptTheme(lipgloss.DefaultTheme()),
	)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(120, 40),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Identifica")) &&
			bytes.Contains(out, []byte("Laser X"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestScriptModel_RendersScorecard(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewScriptModel(sampleDoc(),
		bubbletea.WithScriptRenderer(trueColorRenderer()),
		bubbletea.WithScriptTheme(lipgloss.DefaultTheme()),
		bubbletea.WithScriptValidation(sampleValidation()),
	)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(120, 40),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Nota geral 7.9")) &&
			bytes.Contains(out, []byte("Tom:"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestScriptModel_QuitOnQ(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewScriptModel(sampleDoc())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestScriptModel_QuitOnCtrlC(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewScriptModel(sampleDoc())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestScriptModel_AdaptFlow(t *testing.T) {
	t.Parallel()

	adapter := &mock.BlockAdapter{
		AdaptFn: func(ctx context.Context, stage roteiro.Stage, original string, tone roteiro.ToneBand) (*roteiro.AdaptedText, error) {
			return &roteiro.AdaptedText{Text: "BLOCO-REESCRITO " + stage.Label(), ToneNote: "ajuste"}, nil
		},
	}
	session := roteiro.NewAdaptationSession(adapter)

	m := bubbletea.NewScriptModel(sampleDoc(),
		bubbletea.WithScriptRenderer(trueColorRenderer()),
		bubbletea.WithScriptTheme(lipgloss.DefaultTheme()),
		bubbletea.WithScriptValidation(sampleValidation()),
		bubbletea.WithScriptSession(session),
		bubbletea.WithScriptWordDiffer(worddiff.NewDiffer()),
	)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(120, 50),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Laser X"))
	})

	// Conflict (7.0) and Ending (6.5) sit below the adaptation threshold
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("BLOCO-REESCRITO"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestScriptModel_ComparisonToggle(t *testing.T) {
	t.Parallel()

	adapter := &mock.BlockAdapter{
		AdaptFn: func(ctx context.Context, stage roteiro.Stage, original string, tone roteiro.ToneBand) (*roteiro.AdaptedText, error) {
			return &roteiro.AdaptedText{Text: "texto novo"}, nil
		},
	}
	session := roteiro.NewAdaptationSession(adapter)

	doc := sampleDoc()
	batch, err := session.Adapt(context.Background(), doc, *sampleValidation())
	require.NoError(t, err)
	require.True(t, batch.Complete())

	m := bubbletea.NewScriptModel(doc,
		bubbletea.WithScriptRenderer(trueColorRenderer()),
		bubbletea.WithScriptTheme(lipgloss.DefaultTheme()),
		bubbletea.WithScriptValidation(sampleValidation()),
		bubbletea.WithScriptSession(session),
		bubbletea.WithScriptWordDiffer(worddiff.NewDiffer()),
	)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(120, 50),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("texto novo"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("antes")) && bytes.Contains(out, []byte("depois"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestScriptModel_YankCopiesAdaptedScript(t *testing.T) {
	t.Parallel()

	adapter := &mock.BlockAdapter{
		AdaptFn: func(ctx context.Context, stage roteiro.Stage, original string, tone roteiro.ToneBand) (*roteiro.AdaptedText, error) {
			return &roteiro.AdaptedText{Text: "BLOCO-REESCRITO"}, nil
		},
	}
	session := roteiro.NewAdaptationSession(adapter)

	doc := sampleDoc()
	_, err := session.Adapt(context.Background(), doc, *sampleValidation())
	require.NoError(t, err)

	copied := make(chan string, 1)
	cb := &mock.Clipboard{
		CopyFn: func(content string) error {
			copied <- content
			return nil
		},
	}

	m := bubbletea.NewScriptModel(doc,
		bubbletea.WithScriptSession(session),
		bubbletea.WithScriptClipboard(cb),
	)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(120, 50),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Laser X"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	content := <-copied
	assert.Contains(t, content, "BLOCO-REESCRITO")
	assert.Contains(t, content, "Roteiro sobre Laser X")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

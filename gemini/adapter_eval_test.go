package gemini_test

import (
	"context"
	"os"
	"testing"

	"github.com/rfandrade/roteiro"
	"github.com/rfandrade/roteiro/eval"
	"github.com/rfandrade/roteiro/gemini"
	"github.com/stretchr/testify/require"
)

// TestAdapter_RewriteQuality is an opt-in eval exercising the real API:
// it rewrites a weak conflict block and asks an LLM judge whether the
// rewrite kept the block's narrative role. Run with GOEVALS=1 and
// GEMINI_API_KEY set.
func TestAdapter_RewriteQuality(t *testing.T) {
	eval.SkipUnlessEvals(t)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx := context.Background()
	client, err := gemini.NewClient(ctx, apiKey)
	require.NoError(t, err)

	adapter := gemini.NewAdapter(client, gemini.DefaultModel)
	original := "Conflito: O problema existe e incomoda um pouco as pessoas às vezes."

	adapted, err := adapter.Adapt(ctx, roteiro.StageConflict, original, roteiro.ToneForScore(5.0))
	require.NoError(t, err)
	require.NotEmpty(t, adapted.Text)

	e := eval.New(gemini.NewJudge(client, gemini.DefaultModel))
	e.AssertStageRubric(t, roteiro.StageConflict,
		"O texto apresenta um problema concreto que cresce em tensão, sem introduzir a solução.",
		adapted.Text)
}

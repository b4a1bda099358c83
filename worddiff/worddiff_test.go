package worddiff_test

import (
	"strings"
	"testing"

	"github.com/rfandrade/roteiro"
	"github.com/rfandrade/roteiro/worddiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSpans(spans []roteiro.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func changedText(spans []roteiro.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		if s.Changed {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

func TestDiffer_Tokenize(t *testing.T) {
	t.Parallel()

	d := worddiff.NewDiffer()

	t.Run("accented words stay whole", func(t *testing.T) {
		t.Parallel()

		tokens := d.Tokenize("atenção é tudo")

		assert.Equal(t, []string{"atenção", " ", "é", " ", "tudo"}, tokens)
	})

	t.Run("hyphenated compound is one token", func(t *testing.T) {
		t.Parallel()

		tokens := d.Tokenize("público-alvo certo")

		assert.Equal(t, []string{"público-alvo", " ", "certo"}, tokens)
	})

	t.Run("punctuation and emoji are single tokens", func(t *testing.T) {
		t.Parallel()

		tokens := d.Tokenize("agora! 🏁")

		assert.Equal(t, []string{"agora", "!", " ", "🏁"}, tokens)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, d.Tokenize(""))
	})
}

func TestDiffer_Diff(t *testing.T) {
	t.Parallel()

	d := worddiff.NewDiffer()

	t.Run("round-trips both sides", func(t *testing.T) {
		t.Parallel()

		old := "Agende sua avaliação hoje."
		new := "Agende sua avaliação gratuita ainda hoje."

		oldSpans, newSpans := d.Diff(old, new)

		assert.Equal(t, old, joinSpans(oldSpans))
		assert.Equal(t, new, joinSpans(newSpans))
	})

	t.Run("marks only changed words", func(t *testing.T) {
		t.Parallel()

		oldSpans, newSpans := d.Diff(
			"Cremes prometem milagres.",
			"Cremes prometem resultados.",
		)

		assert.Equal(t, "milagres", changedText(oldSpans))
		assert.Equal(t, "resultados", changedText(newSpans))
	})

	t.Run("identical strings yield one unchanged span", func(t *testing.T) {
		t.Parallel()

		oldSpans, newSpans := d.Diff("igual", "igual")

		require.Len(t, oldSpans, 1)
		assert.False(t, oldSpans[0].Changed)
		assert.Equal(t, oldSpans, newSpans)
	})

	t.Run("dissimilar strings become full replacements", func(t *testing.T) {
		t.Parallel()

		oldSpans, newSpans := d.Diff(
			"nada em comum aqui",
			"texto completamente diferente agora",
		)

		require.Len(t, oldSpans, 1)
		require.Len(t, newSpans, 1)
		assert.True(t, oldSpans[0].Changed)
		assert.True(t, newSpans[0].Changed)
	})

	t.Run("empty sides", func(t *testing.T) {
		t.Parallel()

		oldSpans, newSpans := d.Diff("", "novo")
		assert.Nil(t, oldSpans)
		require.Len(t, newSpans, 1)
		assert.True(t, newSpans[0].Changed)

		oldSpans, newSpans = d.Diff("velho", "")
		require.Len(t, oldSpans, 1)
		assert.True(t, oldSpans[0].Changed)
		assert.Nil(t, newSpans)
	})
}

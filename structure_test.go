package roteiro_test

import (
	"strings"
	"testing"

	"github.com/rfandrade/roteiro"
	"github.com/stretchr/testify/assert"
)

func TestHasCanonicalStructure(t *testing.T) {
	t.Parallel()

	allLabels := "💡 Identificação\n⚡ Conflito\n🔄 Virada\n🏁 Final Marcante"

	t.Run("true when all four labels present", func(t *testing.T) {
		t.Parallel()

		assert.True(t, roteiro.HasCanonicalStructure(allLabels))
	})

	t.Run("false when any single label missing", func(t *testing.T) {
		t.Parallel()

		for _, label := range []string{"Identificação", "Conflito", "Virada", "Final Marcante"} {
			partial := strings.Replace(allLabels, label, "", 1)
			assert.False(t, roteiro.HasCanonicalStructure(partial), "missing %s", label)
		}
	})

	t.Run("accepts mis-encoded identification label", func(t *testing.T) {
		t.Parallel()

		garbled := "IdentificaÃ§Ã£o\nConflito\nVirada\nFinal Marcante"

		assert.True(t, roteiro.HasCanonicalStructure(garbled))
	})

	t.Run("case-insensitive", func(t *testing.T) {
		t.Parallel()

		assert.True(t, roteiro.HasCanonicalStructure(strings.ToUpper(allLabels)))
	})

	t.Run("false on empty input", func(t *testing.T) {
		t.Parallel()

		assert.False(t, roteiro.HasCanonicalStructure(""))
	})
}

func TestStage_Ordering(t *testing.T) {
	t.Parallel()

	stages := roteiro.Stages()

	assert.Equal(t, roteiro.StageIdentification, stages[0])
	assert.Equal(t, roteiro.StageConflict, stages[1])
	assert.Equal(t, roteiro.StageTurn, stages[2])
	assert.Equal(t, roteiro.StageEnding, stages[3])
}

func TestStage_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Identificação", roteiro.StageIdentification.Label())
	assert.Equal(t, "Conflito", roteiro.StageConflict.Label())
	assert.Equal(t, "Virada", roteiro.StageTurn.Label())
	assert.Equal(t, "Final Marcante", roteiro.StageEnding.Label())
}

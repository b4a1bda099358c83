package roteiro_test

import (
	"testing"

	"github.com/rfandrade/roteiro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidationResult_ScoreFor(t *testing.T) {
	t.Parallel()

	result := roteiro.ValidationResult{Hook: 1, Clarity: 2, Emotion: 3, CTA: 4}

	assert.Equal(t, 1.0, result.ScoreFor(roteiro.StageIdentification))
	assert.Equal(t, 2.0, result.ScoreFor(roteiro.StageConflict))
	assert.Equal(t, 3.0, result.ScoreFor(roteiro.StageTurn))
	assert.Equal(t, 4.0, result.ScoreFor(roteiro.StageEnding))
}

func TestValidationResult_Clamped(t *testing.T) {
	t.Parallel()

	result := roteiro.ValidationResult{Hook: -1, Clarity: 11, CTA: 5, Emotion: 5, Total: 10.5}

	assert.False(t, result.InRange())

	clamped := result.Clamped()
	assert.True(t, clamped.InRange())
	assert.Equal(t, 0.0, clamped.Hook)
	assert.Equal(t, 10.0, clamped.Clarity)
	assert.Equal(t, 5.0, clamped.CTA)
	assert.Equal(t, 10.0, clamped.Total)
}

func TestValidationRegistry(t *testing.T) {
	t.Parallel()

	t.Run("stores one result per script identity", func(t *testing.T) {
		t.Parallel()

		registry := roteiro.NewValidationRegistry()

		_, ok := registry.Get("script-1")
		assert.False(t, ok)

		registry.Set("script-1", roteiro.ValidationResult{Total: 6})
		got, ok := registry.Get("script-1")
		require.True(t, ok)
		assert.Equal(t, 6.0, got.Total)
	})

	t.Run("revalidation overwrites", func(t *testing.T) {
		t.Parallel()

		registry := roteiro.NewValidationRegistry(roteiro.WithRegistryLogger(zap.NewNop()))

		registry.Set("script-1", roteiro.ValidationResult{Total: 6})
		registry.Set("script-1", roteiro.ValidationResult{Total: 8.2})

		got, ok := registry.Get("script-1")
		require.True(t, ok)
		assert.Equal(t, 8.2, got.Total)
	})

	t.Run("out-of-range scores are clamped, not rejected", func(t *testing.T) {
		t.Parallel()

		registry := roteiro.NewValidationRegistry()

		stored := registry.Set("script-1", roteiro.ValidationResult{Hook: 12, Total: -0.5})
		assert.Equal(t, 10.0, stored.Hook)
		assert.Equal(t, 0.0, stored.Total)

		got, ok := registry.Get("script-1")
		require.True(t, ok)
		assert.True(t, got.InRange())
	})
}

package jsonl_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rfandrade/roteiro"
	"github.com/rfandrade/roteiro/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads valid records file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "records.jsonl")
		content := `{"case_id":"laser-x","stage":"conflict","original":"a","adapted":"b","adapted_at":"2026-08-28T10:30:00Z"}
{"case_id":"laser-x","stage":"ending","original":"c","adapted":"d","tone_note":"CTA mais direto","adapted_at":"2026-08-28T10:31:00Z"}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		store := jsonl.NewStore()
		records, err := store.Load(path)

		require.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "conflict", records[0].Stage)
		assert.Empty(t, records[0].ToneNote)
		assert.Equal(t, "CTA mais direto", records[1].ToneNote)
	})

	t.Run("returns nil for non-existent file", func(t *testing.T) {
		t.Parallel()

		store := jsonl.NewStore()
		records, err := store.Load("/nonexistent/path.jsonl")

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("returns error for malformed JSON", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "bad.jsonl")
		content := `{"case_id":"a","stage":"turn"}
not valid json`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		store := jsonl.NewStore()
		_, err := store.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("round-trips records", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "records.jsonl")
		records := []roteiro.AdaptationRecord{
			{
				CaseID:    "laser-x",
				Stage:     roteiro.StageConflict.String(),
				Original:  "Bloco original.",
				Adapted:   "Bloco reescrito.",
				ToneNote:  "Tom mais leve",
				AdaptedAt: time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
			},
		}

		store := jsonl.NewStore()
		require.NoError(t, store.Save(path, records))

		loaded, err := store.Load(path)
		require.NoError(t, err)
		assert.Equal(t, records, loaded)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "records.jsonl")
		store := jsonl.NewStore()

		require.NoError(t, store.Save(path, []roteiro.AdaptationRecord{{CaseID: "old"}}))
		require.NoError(t, store.Save(path, []roteiro.AdaptationRecord{{CaseID: "new"}}))

		loaded, err := store.Load(path)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "new", loaded[0].CaseID)
	})
}

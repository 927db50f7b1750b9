package jsonl_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/sectiongrid"
	"github.com/fwojciec/sectiongrid/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaver_Save(t *testing.T) {
	t.Parallel()

	t.Run("appends record to new file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "output.jsonl")
		limit := 5

		saver := jsonl.NewSaver()
		err := saver.Save(path, sectiongrid.SelectionRecord{
			Items:   []sectiongrid.Item{{Name: "Barista", Selected: true}},
			Limit:   &limit,
			SavedAt: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		})

		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"name":"Barista"`)
		assert.Contains(t, string(content), `"limit":5`)
		assert.Contains(t, string(content), `"saved_at":"2025-01-15T10:30:00Z"`)
	})

	t.Run("appends to existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "existing.jsonl")
		existing := `{"items":[{"name":"old","selected":true}],"limit":null}` + "\n"
		require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

		saver := jsonl.NewSaver()
		err := saver.Save(path, sectiongrid.SelectionRecord{
			Items: []sectiongrid.Item{{Name: "new", Selected: true}},
		})

		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := splitLines(string(content))
		assert.Len(t, lines, 2)
		assert.Contains(t, lines[0], `"name":"old"`)
		assert.Contains(t, lines[1], `"name":"new"`)
	})

	t.Run("writes empty selection as empty array", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "empty.jsonl")

		saver := jsonl.NewSaver()
		require.NoError(t, saver.Save(path, sectiongrid.SelectionRecord{}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"items":[]`)
		assert.Contains(t, string(content), `"limit":null`)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "deep", "output.jsonl")

		saver := jsonl.NewSaver()
		err := saver.Save(path, sectiongrid.SelectionRecord{})

		require.NoError(t, err)
		assert.FileExists(t, path)
	})
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

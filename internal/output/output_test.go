package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []File{
		{Path: filepath.Join(dir, "src", "Cards.elm"), Content: []byte("module Cards exposing (all_cards)\n")},
		{Path: filepath.Join(dir, "src", "generated", "Faqs.elm"), Content: []byte("module Faqs exposing (all_faqs)\n")},
	}

	require.NoError(t, WriteFiles(files))

	for _, f := range files {
		got, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)
	}
}

func TestWriteFiles_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cards.elm")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new one"), 0o644))

	require.NoError(t, WriteFiles([]File{{Path: path, Content: []byte("fresh")}}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(got))
}

func TestWriteFiles_ParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "src")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := WriteFiles([]File{{Path: filepath.Join(blocker, "Cards.elm"), Content: []byte("x")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cards.elm")
}

package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	require.NoError(t, CopyFile(context.Background(), src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(context.Background(), filepath.Join(dir, "nope.txt"), filepath.Join(dir, "dst.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMkdirNew(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "item_000")

	require.NoError(t, MkdirNew(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// The leaf must not already exist.
	err = MkdirNew(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	first := UniquePath(dir, "items", "")
	assert.Equal(t, filepath.Join(dir, "items"), first)

	require.NoError(t, os.MkdirAll(first, 0755))
	second := UniquePath(dir, "items", "")
	assert.Equal(t, filepath.Join(dir, "items.001"), second)

	require.NoError(t, os.MkdirAll(second, 0755))
	third := UniquePath(dir, "items", "")
	assert.Equal(t, filepath.Join(dir, "items.002"), third)
}

func TestUniquePath_WithExtension(t *testing.T) {
	dir := t.TempDir()

	first := UniquePath(dir, "items", ".zip")
	assert.Equal(t, filepath.Join(dir, "items.zip"), first)

	require.NoError(t, os.WriteFile(first, nil, 0644))
	second := UniquePath(dir, "items", ".zip")
	assert.Equal(t, filepath.Join(dir, "items.001.zip"), second)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file", "normal-file"},
		{"file:with:colons", "file_with_colons"},
		{"file<with>brackets", "file_with_brackets"},
		{"file/with\\slashes", "file_with_slashes"},
		{"file|with|pipes", "file_with_pipes"},
		{"file?with*wildcards", "file_with_wildcards"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.input))
		})
	}
}

package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMissingDirWithoutCreate(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), false)
	assert.ErrorIs(t, err, ErrDirUnavailable)
}

func TestNewCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	w, err := New(dir, true)
	require.NoError(t, err)
	assert.Equal(t, dir, w.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewRejectsFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := New(path, true)
	assert.ErrorIs(t, err, ErrDirUnavailable)
}

func TestWriteArtifact(t *testing.T) {
	w, err := New(t.TempDir(), false)
	require.NoError(t, err)

	path, size, err := w.WriteArtifact("genres", []string{"INSERT INTO genres VALUES (1);", "INSERT INTO genres VALUES (2);"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.Dir(), "insert_genres.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO genres VALUES (1);\nINSERT INTO genres VALUES (2);\n", string(data))
	assert.Equal(t, int64(len(data)), size)
}

func TestWriteArtifactReplacesPreviousRun(t *testing.T) {
	w, err := New(t.TempDir(), false)
	require.NoError(t, err)

	_, _, err = w.WriteArtifact("users", []string{"old line"})
	require.NoError(t, err)

	path, _, err := w.WriteArtifact("users", []string{"new line"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new line\n", string(data))
}

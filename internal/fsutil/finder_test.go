package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# test"), 0o644))
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.hcl"))
	writeFile(t, filepath.Join(dir, "a.hcl"))
	writeFile(t, filepath.Join(dir, "nested", "c.hcl"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	files, err := CollectFiles([]string{dir, filepath.Join(dir, "a.hcl")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
	}, files)

	files, err = CollectFiles([]string{filepath.Join(dir, "notes.txt")}, ".hcl")
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = CollectFiles([]string{filepath.Join(dir, "missing")}, ".hcl")
	assert.Error(t, err)
}

func TestFindFilesByExtensionRequiresExtension(t *testing.T) {
	_, err := FindFilesByExtension(t.TempDir(), "")
	assert.Error(t, err)
}

package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPepperFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")

	first, err := LoadPepperFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	second, err := LoadPepperFile(path)
	require.NoError(t, err)
	require.Equal(t, first, second, "pepper must be stable across loads")
}

func TestLoadPepperFile_EmptyPath(t *testing.T) {
	pepper, err := LoadPepperFile("")
	require.NoError(t, err)
	require.Empty(t, pepper)
}

func TestLoadPepperFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pepper")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0600))

	_, err := LoadPepperFile(path)
	require.Error(t, err)
}

package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azrogers/mapzk/content"
)

func TestLoader_ReadFile_FirstMatchingRootWins(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	mod := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(base, "default.map"), []byte("base"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(mod, "default.map"), []byte("modded"), 0o644))

	// mod listed first takes precedence over base.
	loader := content.NewLoader(mod, base)

	got, err := loader.ReadFile("default.map")
	require.NoError(t, err)
	assert.Equal(t, "modded", got)
}

func TestLoader_ReadFile_FallsBackToLaterRoot(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	mod := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(base, "default.map"), []byte("base"), 0o644))

	loader := content.NewLoader(mod, base)

	got, err := loader.ReadFile("default.map")
	require.NoError(t, err)
	assert.Equal(t, "base", got)
}

func TestLoader_ReadFile_NotFoundInAnyRoot(t *testing.T) {
	t.Parallel()

	loader := content.NewLoader(t.TempDir(), t.TempDir())

	_, err := loader.ReadFile("missing.map")
	require.Error(t, err)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestLoader_ReadFile_SkipsDirectoriesNamedLikeTheFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "terrain.png"), 0o755))

	loader := content.NewLoader(root)

	_, err := loader.ReadFile("terrain.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestLoader_ReadBytes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	want := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, os.WriteFile(filepath.Join(root, "terrain.png"), want, 0o644))

	loader := content.NewLoader(root)

	got, err := loader.ReadBytes("terrain.png")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

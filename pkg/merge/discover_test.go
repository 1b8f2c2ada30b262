package merge

import (
	"os"
	"path/filepath"
	"testing"

	"manifestmerge/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDiscoverDocuments(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.md", "a.md", "B.md", "10.md", "2.md", "readme.txt", "md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	names, err := DiscoverDocuments(dir, ".md", nil, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, []string{"10.md", "2.md", "B.md", "a.md", "b.md", "sub.md"}, names)
}

func TestDiscoverDocuments_Ignore(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "wip.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.md"), 0755))
	gi := ignore.New(nil)
	gi.CompileLines("wip.md", "old.md/")

	names, err := DiscoverDocuments(dir, ".md", gi, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, names)
}

func TestDiscoverDocuments_MissingDirectory(t *testing.T) {
	names, err := DiscoverDocuments(filepath.Join(t.TempDir(), "nope"), ".md", nil, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, names)
}

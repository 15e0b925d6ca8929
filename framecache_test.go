package framecache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgcache "github.com/bft-labs/framecache/pkg/framecache"
)

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "coins.json")
	require.NoError(t, os.WriteFile(sheet, []byte(`{"frames": {
		"coin_0": {"frame": {"x": 0, "y": 0, "w": 8, "h": 8}},
		"coin_1": {"frame": {"x": 8, "y": 0, "w": 8, "h": 8}}
	}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coins.png"), []byte("png"), 0o644))

	cache, err := LoadFiles(context.Background(), sheet)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
	assert.True(t, cache.HasLoadedFile(sheet))
}

func TestLoadFiles_MissingImage(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "lonely.json")
	require.NoError(t, os.WriteFile(sheet, []byte(`{"frames": {}}`), 0o644))

	_, err := LoadFiles(context.Background(), sheet)
	require.Error(t, err)
	assert.True(t, pkgcache.IsImageLoadError(err))
}

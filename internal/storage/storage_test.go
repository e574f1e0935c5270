package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	const path = "static/js/site.js"

	t.Run("Save creates parent directories", func(t *testing.T) {
		n, err := store.Save(ctx, path, strings.NewReader("console.log(1)"))
		require.NoError(t, err)
		assert.Equal(t, int64(len("console.log(1)")), n)

		isDir, err := afero.IsDir(memFs, "static/js")
		require.NoError(t, err)
		assert.True(t, isDir)
	})

	t.Run("Save overwrites", func(t *testing.T) {
		_, err := store.Save(ctx, path, strings.NewReader("v2"))
		require.NoError(t, err)

		data, err := afero.ReadFile(memFs, path)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(data))
	})

	t.Run("Open", func(t *testing.T) {
		rc, err := store.Open(ctx, path)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(data))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, path))
		exists, err := afero.Exists(memFs, path)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Open missing file", func(t *testing.T) {
		_, err := store.Open(ctx, "nothing/here.txt")
		assert.Error(t, err)
	})

	t.Run("Save honours cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Save(cctx, "late.txt", strings.NewReader("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewDirStore(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	_, err := store.Save(context.Background(), "index.html", strings.NewReader("<p>hi</p>"))
	require.NoError(t, err)

	data, err := afero.ReadFile(afero.NewOsFs(), dir+"/index.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))
}

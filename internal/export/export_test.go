package export

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/risq/internal/rendering"
	"github.com/nfrund/risq/internal/storage"
	"github.com/nfrund/risq/web/src/templates/layouts"
)

func TestExport(t *testing.T) {
	memFs := afero.NewMemMapFs()
	assets := fstest.MapFS{
		"styles.css": {Data: []byte(".bg-dots{}")},
		"js/site.js": {Data: []byte("// site")},
	}

	exp := New(rendering.NewUniversalRenderer(), storage.NewAferoStore(memFs), assets,
		layouts.PageConfig{BaseURL: "https://risq.example"}, nil)

	res, err := exp.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{IndexFile, "static/js/site.js", "static/styles.css"}, res.Files)
	assert.Positive(t, res.Bytes)

	index, err := afero.ReadFile(memFs, IndexFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(index), "<!DOCTYPE html>"))
	assert.Contains(t, string(index), `content="https://risq.example/"`)

	css, err := afero.ReadFile(memFs, "static/styles.css")
	require.NoError(t, err)
	assert.Equal(t, ".bg-dots{}", string(css))
}

func TestExport_WithoutAssets(t *testing.T) {
	memFs := afero.NewMemMapFs()
	exp := New(rendering.NewUniversalRenderer(), storage.NewAferoStore(memFs), nil, layouts.PageConfig{}, nil)

	res, err := exp.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{IndexFile}, res.Files)
}

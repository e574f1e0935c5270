// Package export renders the landing page and its static assets into a
// Store, for hosting the page as plain files. Form posts still need the
// server behind it.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"

	"github.com/nfrund/risq/internal/rendering"
	"github.com/nfrund/risq/internal/storage"
	"github.com/nfrund/risq/web/src/templates/layouts"
	"github.com/nfrund/risq/web/src/templates/pages"
	"github.com/nfrund/risq/web/src/templates/partials"
)

// IndexFile is the name the rendered page is written under.
const IndexFile = "index.html"

// Result summarises one export run.
type Result struct {
	Files []string
	Bytes int64
}

// Exporter writes the site to a Store.
type Exporter struct {
	renderer rendering.Renderer
	store    storage.Store
	assets   fs.FS
	page     layouts.PageConfig
	logger   *slog.Logger
}

// New creates an Exporter. assets is the static directory's content; it is
// written under static/ so the page's asset links resolve.
func New(renderer rendering.Renderer, store storage.Store, assets fs.FS, page layouts.PageConfig, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{renderer: renderer, store: store, assets: assets, page: page, logger: logger}
}

// Export writes index.html followed by every static asset.
func (e *Exporter) Export(ctx context.Context) (Result, error) {
	var res Result

	html, err := e.renderer.RenderComponent(ctx, pages.LandingPage(e.page, partials.FlashData{}, pages.LandingData{}))
	if err != nil {
		return res, fmt.Errorf("render landing page: %w", err)
	}
	if err := e.save(ctx, &res, IndexFile, bytes.NewReader(html)); err != nil {
		return res, err
	}

	if e.assets == nil {
		return res, nil
	}
	err = fs.WalkDir(e.assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := e.assets.Open(p)
		if err != nil {
			return fmt.Errorf("open asset %s: %w", p, err)
		}
		defer f.Close()
		return e.save(ctx, &res, path.Join("static", p), f)
	})
	if err != nil {
		return res, fmt.Errorf("copy static assets: %w", err)
	}
	return res, nil
}

func (e *Exporter) save(ctx context.Context, res *Result, name string, r io.Reader) error {
	n, err := e.store.Save(ctx, name, r)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	res.Files = append(res.Files, name)
	res.Bytes += n
	e.logger.Debug("Exported file", "path", name, "bytes", n)
	return nil
}

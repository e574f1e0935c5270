package layouts

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/risq/internal/view"
	"github.com/nfrund/risq/web/src/templates/partials"
)

const defaultDescription = "Data-driven risk assessment for startups: personalized insights, prioritized action plans, and the confidence to make informed decisions from day one."

// PageConfig carries document-level metadata.
type PageConfig struct {
	Title       string
	Description string
	// BaseURL is the canonical site origin used for og:url.
	BaseURL string
}

// Base wraps page content in the HTML document shell.
func Base(page PageConfig, flash partials.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(page, flash, view.AdaptTemplToGomponent(ctx, content)).Render(w)
	})
}

func document(page PageConfig, flash partials.FlashData, content g.Node) g.Node {
	title := CalculateTitle(page.Title)
	description := page.Description
	if description == "" {
		description = defaultDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(title)),
				h.Meta(h.Name("description"), h.Content(description)),
				h.Meta(g.Attr("property", "og:title"), h.Content(title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(description)),
				h.Meta(g.Attr("property", "og:type"), h.Content("website")),
				g.If(page.BaseURL != "", h.Meta(g.Attr("property", "og:url"), h.Content(strings.TrimSuffix(page.BaseURL, "/")+"/"))),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
				h.Script(h.Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/styles.css")),
			),
			h.Body(
				h.Class("min-h-screen bg-gradient-to-br from-slate-50 via-blue-50 to-indigo-50"),
				partials.Flash(flash),
				h.Main(content),
				h.Script(h.Src("/static/js/site.js"), h.Defer()),
			),
		),
	})
}

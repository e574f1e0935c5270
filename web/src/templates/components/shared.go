package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/risq/internal/domain"
)

// Icon renders an iconify glyph. A non-empty label makes it an accessible image.
func Icon(icon domain.Icon, class, label string) g.Node {
	classes := "iconify inline-block"
	if class != "" {
		classes = fmt.Sprintf("iconify inline-block %s", class)
	}

	if label != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", string(icon)),
			g.Attr("role", "img"),
			g.Attr("aria-label", label),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", string(icon)),
		g.Attr("aria-hidden", "true"),
	)
}

// sectionHeading is the centred title + lead paragraph every content section opens with.
func sectionHeading(title, lead string) g.Node {
	return Div(
		Class("text-center mb-16"),
		H2(Class("text-3xl sm:text-4xl font-bold text-slate-900 mb-6"), g.Text(title)),
		P(Class("text-xl text-slate-600 max-w-3xl mx-auto"), g.Text(lead)),
	)
}

// gradientTitle is the two-line headline used by the dark Hero and CTA sections.
func gradientTitle(el func(...g.Node) g.Node, class, first, accent string) g.Node {
	return el(
		Class(class),
		g.Text(first),
		Span(
			Class("bg-gradient-to-r from-blue-400 via-purple-400 to-cyan-400 bg-clip-text text-transparent block mt-2"),
			g.Text(accent),
		),
	)
}

// highlights renders a row of icon + label badges.
func highlights(items []domain.Highlight) g.Node {
	return Div(
		Class("flex flex-wrap justify-center items-center gap-8 pt-8 text-slate-400"),
		g.Group(g.Map(items, func(h domain.Highlight) g.Node {
			return Div(
				Class("flex items-center gap-2"),
				Icon(h.Icon, "w-5 h-5 "+h.Tone, ""),
				Span(g.Text(h.Label)),
			)
		})),
	)
}

// callout is the rounded banner that closes the Problem and Benefits sections.
func callout(icon domain.Icon, tone, text string) g.Node {
	return Div(
		Class("mt-16 text-center"),
		Div(
			Class(fmt.Sprintf("inline-flex items-center gap-4 px-6 py-4 bg-gradient-to-r from-%[1]s-50 to-%[1]s-100 rounded-xl border border-%[1]s-200", tone)),
			Icon(icon, fmt.Sprintf("w-6 h-6 text-%s-600", tone), ""),
			Span(Class(fmt.Sprintf("text-%s-800 font-medium", tone)), g.Text(text)),
		),
	)
}

// darkBackdrop is the dotted pattern behind the Hero and CTA sections.
func darkBackdrop() g.Node {
	return Div(
		Class("absolute inset-0 opacity-20 bg-dots"),
		g.Attr("aria-hidden", "true"),
	)
}

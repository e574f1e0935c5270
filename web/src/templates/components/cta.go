package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
)

// CallToAction renders the closing dark section with the second search bar.
func CallToAction(search SearchBarProps) g.Node {
	return Section(
		ID(string(domain.SectionCTA)),
		Class("py-20 bg-gradient-to-br from-slate-900 via-blue-900 to-indigo-900 text-white relative overflow-hidden"),
		darkBackdrop(),
		Div(
			Class("relative max-w-4xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			Div(
				Class("space-y-8"),
				gradientTitle(H2, "text-3xl sm:text-4xl lg:text-5xl font-bold leading-tight", content.CTATitle, content.CTATitleAccent),
				P(Class("text-xl text-slate-300 max-w-2xl mx-auto leading-relaxed"), g.Text(content.CTALead)),
				Div(
					Class("space-y-4"),
					SearchBar(search),
					P(Class("text-sm text-slate-400"), g.Text(content.CTASearchHint)),
				),
				highlights(content.CTAHighlights()),
				Div(
					Class("pt-8 border-t border-slate-700"),
					P(Class("text-slate-400 text-sm"), g.Text(content.CTAFooter)),
				),
			),
		),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
)

// Hero renders the opening section with the primary search bar and highlights.
func Hero(search SearchBarProps) g.Node {
	return Section(
		ID(string(domain.SectionHero)),
		Class("relative overflow-hidden bg-gradient-to-br from-slate-900 via-blue-900 to-indigo-900 text-white"),
		darkBackdrop(),
		Div(
			Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-20 lg:py-32"),
			Div(
				Class("text-center space-y-8"),
				Div(
					Class("inline-flex items-center gap-2 px-4 py-2 bg-blue-500/20 rounded-full border border-blue-400/30 text-blue-200 text-sm font-medium"),
					Icon(domain.IconShield, "w-4 h-4", ""),
					g.Text(content.HeroBadge),
				),
				gradientTitle(H1, "text-4xl sm:text-5xl lg:text-6xl font-bold leading-tight", content.HeroTitle, content.HeroTitleAccent),
				P(Class("text-xl text-slate-300 max-w-3xl mx-auto leading-relaxed"), g.Text(content.HeroLead)),
				Div(
					Class("space-y-4"),
					SearchBar(search),
					P(Class("text-sm text-slate-400"), g.Text(content.HeroSearchHint)),
				),
				highlights(content.HeroHighlights()),
			),
		),
	)
}

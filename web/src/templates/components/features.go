package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
)

// Features renders the six capability cards.
func Features() g.Node {
	return Section(
		ID(string(domain.SectionFeatures)),
		Class("py-20 bg-gradient-to-br from-slate-50 to-blue-50"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeading(content.FeaturesTitle, content.FeaturesLead),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(content.Features(), featureCard)),
			),
		),
	)
}

func featureCard(item domain.DisplayItem) g.Node {
	return Div(
		Class("group relative p-8 bg-white rounded-2xl border border-slate-200 hover:border-slate-300 hover:shadow-xl transition-all duration-500 hover:-translate-y-2"),
		Div(
			Class("w-14 h-14 bg-gradient-to-br "+item.Accent+" rounded-2xl flex items-center justify-center mb-6 group-hover:scale-110 transition-transform duration-300"),
			Icon(item.Icon, "w-7 h-7 text-white", ""),
		),
		H3(Class("text-xl font-semibold text-slate-900 mb-4"), g.Text(item.Title)),
		P(Class("text-slate-600 leading-relaxed"), g.Text(item.Description)),
		Div(Class("absolute inset-0 bg-gradient-to-br "+item.Accent+" opacity-0 group-hover:opacity-5 rounded-2xl transition-opacity duration-300")),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
)

// Benefits renders the outcome stats and the closing callout.
func Benefits() g.Node {
	return Section(
		ID(string(domain.SectionBenefits)),
		Class("py-20 bg-white"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeading(content.BenefitsTitle, content.BenefitsLead),
			Div(
				Class("grid md:grid-cols-2 gap-8"),
				g.Group(g.Map(content.Outcomes(), outcomeCard)),
			),
			callout(domain.IconTrendingUp, "green", content.BenefitsCallout),
		),
	)
}

func outcomeCard(o domain.Outcome) g.Node {
	return Div(
		Class("group flex gap-6 p-8 bg-gradient-to-br from-slate-50 to-blue-50 rounded-2xl border border-slate-200 hover:border-blue-200 hover:shadow-lg transition-all duration-300"),
		Div(
			Class("flex-shrink-0"),
			Div(
				Class("w-14 h-14 bg-gradient-to-br from-blue-500 to-purple-500 rounded-2xl flex items-center justify-center group-hover:scale-110 transition-transform duration-300"),
				Icon(o.Icon, "w-7 h-7 text-white", ""),
			),
		),
		Div(
			Class("flex-1"),
			H3(Class("text-xl font-semibold text-slate-900 mb-3"), g.Text(o.Title)),
			P(Class("text-slate-600 mb-4 leading-relaxed"), g.Text(o.Description)),
			Div(
				Class("flex items-center gap-3"),
				Div(Class("text-2xl font-bold bg-gradient-to-r from-blue-600 to-purple-600 bg-clip-text text-transparent"), g.Text(o.Stat)),
				Div(Class("text-sm text-slate-500 font-medium"), g.Text(o.StatLabel)),
			),
		),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
)

// Problem renders the four startup failure causes and their callout.
func Problem() g.Node {
	return Section(
		ID(string(domain.SectionProblem)),
		Class("py-20 bg-white"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeading(content.ProblemTitle, content.ProblemLead),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Group(g.Map(content.Problems(), problemCard)),
			),
			callout(domain.IconAlertTriangle, "red", content.ProblemCallout),
		),
	)
}

func problemCard(item domain.DisplayItem) g.Node {
	return Div(
		Class("group p-6 bg-gradient-to-br from-slate-50 to-slate-100 rounded-2xl border border-slate-200 hover:border-red-200 hover:shadow-lg transition-all duration-300 hover:-translate-y-1"),
		Div(
			Class("w-12 h-12 bg-gradient-to-br from-red-100 to-orange-100 rounded-xl flex items-center justify-center mb-4 group-hover:scale-110 transition-transform duration-300"),
			Icon(item.Icon, "w-6 h-6 text-red-600", ""),
		),
		H3(Class("text-lg font-semibold text-slate-900 mb-2"), g.Text(item.Title)),
		P(Class("text-slate-600 text-sm leading-relaxed"), g.Text(item.Description)),
	)
}

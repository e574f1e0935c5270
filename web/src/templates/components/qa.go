package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
)

// QuestionFormID is the DOM id htmx swaps after a submission.
const QuestionFormID = "question-form"

// faqDateLayout matches the US short date shown under each answer.
const faqDateLayout = "1/2/2006"

// QuestionFormProps carries the form's text fields between renders.
type QuestionFormProps struct {
	Question string
	Email    string
}

// QASection renders the question form beside the answered FAQ entries.
func QASection(form QuestionFormProps) g.Node {
	return Section(
		ID(string(domain.SectionQA)),
		Class("py-20 bg-white"),
		Div(
			Class("max-w-4xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("text-center mb-12"),
				Div(
					Class("inline-flex items-center gap-2 px-4 py-2 bg-blue-50 rounded-full border border-blue-200 text-blue-700 text-sm font-medium mb-4"),
					Icon(domain.IconHelp, "w-4 h-4", ""),
					g.Text(content.QABadge),
				),
				H2(Class("text-3xl sm:text-4xl font-bold text-gray-900 mb-4"), g.Text(content.QATitle)),
				P(Class("text-xl text-gray-600 max-w-2xl mx-auto"), g.Text(content.QALead)),
			),
			Div(
				Class("grid gap-12 lg:grid-cols-2"),
				Div(
					Class("order-2 lg:order-1"),
					Div(
						Class("rounded-lg border bg-white shadow-lg"),
						Div(
							Class("p-6 pb-0"),
							H3(
								Class("flex items-center gap-2 text-2xl font-semibold"),
								Icon(domain.IconMessage, "w-5 h-5", ""),
								g.Text(content.QAFormTitle),
							),
						),
						Div(Class("p-6"), QuestionForm(form)),
					),
				),
				Div(
					Class("order-1 lg:order-2"),
					H3(Class("text-2xl font-bold text-gray-900 mb-6"), g.Text(content.QAListTitle)),
					Div(Class("space-y-6"), g.Group(g.Map(content.FAQ(), faqCard))),
				),
			),
			Div(
				Class("mt-12 text-center"),
				P(Class("text-gray-600"), g.Text(content.QAFooter)),
			),
		),
	)
}

// QuestionForm renders the ask-a-question form. While a request is in flight
// htmx disables the submit button and the indicator class swaps its label.
func QuestionForm(p QuestionFormProps) g.Node {
	return FormEl(
		ID(QuestionFormID),
		Method("post"),
		Action("/questions"),
		hx.Post("/questions"),
		hx.Target("#"+QuestionFormID),
		hx.Swap("outerHTML"),
		hx.DisabledElt("find button[type='submit']"),
		hx.Indicator("#"+QuestionFormID),
		Class("space-y-4"),
		Div(
			Label(For("email"), Class("block text-sm font-medium text-gray-700 mb-2"), g.Text(content.QAEmailLabel)),
			Input(
				ID("email"),
				Type("email"),
				Name("email"),
				Value(p.Email),
				Placeholder("your@email.com"),
				Class("w-full rounded-md border px-3 py-2"),
			),
		),
		Div(
			Label(For("question"), Class("block text-sm font-medium text-gray-700 mb-2"), g.Text(content.QAQuestionLabel)),
			Textarea(
				ID("question"),
				Name("question"),
				Placeholder(content.QAQuestionHint),
				Required(),
				Class("w-full h-32 rounded-md border px-3 py-2"),
				g.Text(p.Question),
			),
		),
		Button(
			Type("submit"),
			Class("w-full inline-flex items-center justify-center rounded-md px-4 py-2 text-white bg-gradient-to-r from-blue-600 to-purple-600 hover:from-blue-700 hover:to-purple-700 disabled:opacity-50"),
			Span(
				Class("label-idle inline-flex items-center"),
				Icon(domain.IconSend, "w-4 h-4 mr-2", ""),
				g.Text(content.QASubmitLabel),
			),
			Span(Class("label-busy"), g.Text(content.QASubmittingLabel)),
		),
	)
}

func faqCard(entry domain.QAEntry) g.Node {
	return Div(
		Class("rounded-lg border bg-white shadow-sm hover:shadow-md transition-shadow"),
		g.Attr("data-faq-id", strconv.Itoa(entry.ID)),
		Div(
			Class("p-6"),
			Div(
				Class("mb-3"),
				H4(
					Class("font-semibold text-gray-900 mb-2 flex items-start gap-2"),
					Icon(domain.IconHelp, "w-5 h-5 mt-0.5 text-blue-600 flex-shrink-0", ""),
					g.Text(entry.Question),
				),
			),
			P(Class("text-gray-600 leading-relaxed pl-7"), g.Text(entry.Answer)),
			Div(
				Class("mt-4 pt-3 border-t border-gray-100"),
				Span(Class("text-sm text-gray-400"), g.Text(entry.CreatedAt.Format(faqDateLayout))),
			),
		),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/risq/internal/domain"
)

// SearchBarProps configures one search widget instance.
type SearchBarProps struct {
	// Source identifies the section hosting the widget ("hero" or "cta").
	Source      string
	Value       string
	Placeholder string
}

// SearchBarID is the DOM id of the widget rendered for source.
func SearchBarID(source string) string {
	return "search-" + source
}

// SearchBar renders the text input and button. Without JavaScript it is a
// plain form post; with htmx the widget swaps itself in place. Enter in the
// input submits the form either way.
func SearchBar(p SearchBarProps) g.Node {
	id := SearchBarID(p.Source)
	return FormEl(
		ID(id),
		Method("post"),
		Action("/search"),
		hx.Post("/search"),
		hx.Target("#"+id),
		hx.Swap("outerHTML"),
		Class("flex flex-col sm:flex-row gap-4 max-w-lg mx-auto"),
		Input(Type("hidden"), Name("source"), Value(p.Source)),
		Input(
			Type("text"),
			Name("domain"),
			Value(p.Value),
			Placeholder(p.Placeholder),
			AutoComplete("off"),
			g.Attr("aria-label", "Startup domain"),
			Class("flex-1 h-12 px-4 text-lg rounded-md bg-white/10 border border-white/20 text-white placeholder:text-white/60 focus:bg-white/20"),
		),
		Button(
			Type("submit"),
			Class("inline-flex items-center justify-center rounded-md bg-gradient-to-r from-blue-600 to-purple-600 hover:from-blue-700 hover:to-purple-700 text-white px-8 py-3 text-lg font-semibold transition-all duration-300 hover:scale-105"),
			Icon(domain.IconSearch, "w-5 h-5 mr-2", ""),
			g.Text("Search"),
		),
	)
}

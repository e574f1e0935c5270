package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FlashData holds the one-shot messages read from the session for a render.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// Flash renders the messages. Entries marked data-flash-alert are shown as a
// blocking browser alert by site.js on page load.
func Flash(data FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return Div(
		ID("flash"),
		Class("fixed top-4 inset-x-0 z-50 flex flex-col items-center gap-2"),
		g.Attr("role", "status"),
		g.Group(g.Map(data.Success, func(msg string) g.Node {
			return Div(
				Class("rounded-md bg-green-50 border border-green-200 text-green-800 px-4 py-2"),
				g.Attr("data-flash-alert", "success"),
				g.Text(msg),
			)
		})),
		g.Group(g.Map(data.Error, func(msg string) g.Node {
			return Div(
				Class("rounded-md bg-red-50 border border-red-200 text-red-800 px-4 py-2"),
				g.Attr("data-flash-alert", "error"),
				g.Text(msg),
			)
		})),
	)
}

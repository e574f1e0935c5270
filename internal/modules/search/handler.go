package search

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
	"github.com/nfrund/risq/internal/middleware"
	"github.com/nfrund/risq/internal/pubsub"
	"github.com/nfrund/risq/internal/view"
	"github.com/nfrund/risq/web/src/templates/components"
	"github.com/nfrund/risq/web/src/templates/layouts"
	"github.com/nfrund/risq/web/src/templates/pages"
)

// Request is the DTO bound from either search bar.
type Request struct {
	Domain string `form:"domain"`
	Source string `form:"source" validate:"omitempty,oneof=hero cta"`
}

// Handler backs both search bars on the landing page.
type Handler struct {
	publisher pubsub.Publisher
	page      layouts.PageConfig
}

// NewHandler creates a search handler. page is used when a non-htmx form post
// has to re-render the whole landing page.
func NewHandler(publisher pubsub.Publisher, page layouts.PageConfig) *Handler {
	return &Handler{publisher: publisher, page: page}
}

// Post submits the widget for the posting section. The input keeps its value
// whether or not the submission ran.
func (h *Handler) Post(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search submission")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown search source")
	}
	if req.Source == "" {
		req.Source = string(domain.SectionHero)
	}

	widget := NewWidget(h.callback(req.Source), placeholderFor(req.Source))
	widget.SetValue(req.Domain)
	if !widget.Submit(c.Request().Context()) {
		middleware.FromContext(c.Request().Context()).Debug("Ignoring empty search", "error", domain.ErrEmptyQuery)
	}

	if view.IsHTMX(c) {
		return c.Render(http.StatusOK, "", components.SearchBar(components.SearchBarProps{
			Source:      req.Source,
			Value:       widget.Value(),
			Placeholder: widget.Placeholder(),
		}))
	}

	data := pages.LandingData{}
	if req.Source == string(domain.SectionCTA) {
		data.CTAQuery = widget.Value()
	} else {
		data.HeroQuery = widget.Value()
	}
	return c.Render(http.StatusOK, "", pages.LandingPage(h.page, view.GetFlashData(c), data))
}

func (h *Handler) callback(source string) Callback {
	var publish Callback
	if h.publisher != nil {
		publish = PublishCallback(h.publisher, source)
	}
	return Chain(LogCallback(nil), publish)
}

func placeholderFor(source string) string {
	if source == string(domain.SectionCTA) {
		return content.CTAPlaceholder
	}
	return content.DefaultPlaceholder
}

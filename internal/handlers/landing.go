package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/risq/internal/view"
	"github.com/nfrund/risq/web/src/templates/layouts"
	"github.com/nfrund/risq/web/src/templates/pages"
)

// LandingHandler serves the marketing page.
type LandingHandler struct {
	page layouts.PageConfig
}

// NewLandingHandler creates a LandingHandler that renders with the given page metadata.
func NewLandingHandler(page layouts.PageConfig) *LandingHandler {
	return &LandingHandler{page: page}
}

// Get renders the full landing page, consuming any pending flash messages.
func (h *LandingHandler) Get(c echo.Context) error {
	page := pages.LandingPage(h.page, view.GetFlashData(c), pages.LandingData{})
	return c.Render(http.StatusOK, "", page)
}

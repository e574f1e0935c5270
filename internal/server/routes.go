package server

import (
	"github.com/labstack/echo/v4"

	"github.com/nfrund/risq/internal/app"
	"github.com/nfrund/risq/internal/handlers"
	"github.com/nfrund/risq/web"
)

// registerRoutes sets up the routes that don't belong to a module.
func (s *Server) registerRoutes(deps app.Dependencies) {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	landing := handlers.NewLandingHandler(deps.Page())
	s.E.GET("/", landing.Get)

	health := handlers.NewHealthHandler(s.moduleNames(), s.topics.Names(), s.started)
	s.E.GET("/health", health.Get)
}

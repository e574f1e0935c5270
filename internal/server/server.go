package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/risq/internal/app"
	"github.com/nfrund/risq/internal/config"
	"github.com/nfrund/risq/internal/handlers"
	"github.com/nfrund/risq/internal/middleware"
	"github.com/nfrund/risq/internal/module"
	"github.com/nfrund/risq/internal/pubsub"
	"github.com/nfrund/risq/internal/rendering"
	"github.com/nfrund/risq/internal/topicmgr"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     config.Provider
	bus     *pubsub.WatermillBridge
	topics  *topicmgr.Registry
	modules []module.Module
	started time.Time

	// cancel stops the module subscribers started during boot.
	cancel context.CancelFunc
}

// New creates a Server, boots every module and registers the routes.
func New(cfg config.Provider) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	topics := topicmgr.NewRegistry()
	if err := app.RegisterTopics(topics); err != nil {
		return nil, err
	}

	bus := pubsub.NewWatermillBridge()
	deps := app.Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		Config:     cfg,
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		E:       e,
		Cfg:     cfg,
		bus:     bus,
		topics:  topics,
		modules: app.NewModules(deps),
		started: time.Now(),
		cancel:  cancel,
	}

	if err := s.bootModules(ctx); err != nil {
		cancel()
		_ = bus.Close()
		return nil, fmt.Errorf("boot modules: %w", err)
	}
	s.registerRoutes(deps)

	slog.Info("Server initialised", "environment", cfg.GetEnvironment(), "modules", s.moduleNames(), "topics", topics.Count())
	return s, nil
}

package search

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/risq/internal/domain"
	"github.com/nfrund/risq/internal/middleware"
	"github.com/nfrund/risq/internal/module"
	"github.com/nfrund/risq/internal/pubsub"
	"github.com/nfrund/risq/web/src/templates/layouts"
)

// Module wires the search endpoint and its event subscriber.
type Module struct {
	module.BaseModule
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	page       layouts.PageConfig
	rateLimit  float64
}

// Dependencies holds the services the module requires.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Page       layouts.PageConfig
	RateLimit  float64
}

// New creates the module.
func New(deps Dependencies) *Module {
	return &Module{
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		page:       deps.Page,
		rateLimit:  deps.RateLimit,
	}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "search"
}

// Boot registers POST /search and the analysis subscriber.
func (m *Module) Boot(ctx context.Context, g *echo.Group) error {
	slog.Info("Booting search module")

	handler := NewHandler(m.publisher, m.page)
	g.POST("/search", handler.Post, middleware.RateLimiter(m.rateLimit))

	if m.subscriber == nil {
		return nil
	}
	return pubsub.Subscribe(ctx, m.subscriber, TopicDomainRequested, func(ctx context.Context, req domain.SearchRequest) error {
		// Analysis runs outside this service; the request is only recorded in the log.
		slog.Info("Domain analysis requested", "domain", req.Domain, "source", req.Source)
		return nil
	})
}

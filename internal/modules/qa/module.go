package qa

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/risq/internal/domain"
	"github.com/nfrund/risq/internal/middleware"
	"github.com/nfrund/risq/internal/module"
	"github.com/nfrund/risq/internal/pubsub"
)

// Module wires the question form endpoint and its event subscriber.
type Module struct {
	module.BaseModule
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	delay      time.Duration
	rateLimit  float64
}

// Dependencies holds the services the module requires.
type Dependencies struct {
	Publisher   pubsub.Publisher
	Subscriber  pubsub.Subscriber
	SubmitDelay time.Duration
	RateLimit   float64
}

// New creates the module.
func New(deps Dependencies) *Module {
	return &Module{
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		delay:      deps.SubmitDelay,
		rateLimit:  deps.RateLimit,
	}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "qa"
}

// Boot registers POST /questions and starts the submission subscriber.
func (m *Module) Boot(ctx context.Context, g *echo.Group) error {
	slog.Info("Booting qa module")

	handler := NewHandler(m.publisher, m.delay)
	g.POST("/questions", handler.Post, middleware.RateLimiter(m.rateLimit))

	if m.subscriber == nil {
		return nil
	}
	return pubsub.Subscribe(ctx, m.subscriber, TopicQuestionSubmitted, func(ctx context.Context, s domain.Submission) error {
		// No answer backend exists yet; the question is only recorded in the log.
		slog.Info("Question awaiting answer",
			"submission_id", s.ID.String(),
			"has_email", s.Email != "",
			"submitted_at", s.SubmittedAt,
		)
		return nil
	})
}

package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/risq/internal/domain"
	"github.com/nfrund/risq/internal/middleware"
	"github.com/nfrund/risq/internal/pubsub"
)

// LogCallback logs each searched domain. A nil logger uses the request logger.
func LogCallback(logger *slog.Logger) Callback {
	return func(ctx context.Context, d string) {
		l := logger
		if l == nil {
			l = middleware.FromContext(ctx)
		}
		l.Info("Searching for startup domain", "domain", d)
	}
}

// PublishCallback forwards each searched domain onto the bus, tagged with
// the section the widget lives in.
func PublishCallback(pub pubsub.Publisher, source string) Callback {
	return func(ctx context.Context, d string) {
		req := domain.SearchRequest{
			Domain:      d,
			Source:      source,
			RequestedAt: time.Now().UTC(),
		}
		if err := pubsub.Publish(ctx, pub, TopicDomainRequested, req); err != nil {
			middleware.FromContext(ctx).Error("Failed to publish search request", "domain", d, "error", err)
		}
	}
}

// Chain runs callbacks in order. Nil entries are skipped.
func Chain(callbacks ...Callback) Callback {
	return func(ctx context.Context, d string) {
		for _, cb := range callbacks {
			if cb != nil {
				cb(ctx, d)
			}
		}
	}
}

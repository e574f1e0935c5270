package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const tooManyRequests = "Too many requests. Please try again later."

// RateLimiter limits form posts per client IP. perSecond is both the refill
// rate and the burst size of the in-memory token bucket.
func RateLimiter(perSecond float64) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// NewRateLimiterMemoryStore is a simple in-memory store suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStore(rate.Limit(perSecond)),

		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if c.Request().Header.Get("HX-Request") == "true" {
				// htmx only swaps 2xx responses by default; let the client script surface it.
				c.Response().Header().Set("HX-Reswap", "none")
			}
			return c.String(http.StatusTooManyRequests, tooManyRequests)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}

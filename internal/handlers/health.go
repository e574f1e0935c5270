package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness, the modules that booted and the event
// topics they publish.
type HealthHandler struct {
	modules []string
	topics  []string
	started time.Time
}

// NewHealthHandler creates a HealthHandler. started is the server boot time.
func NewHealthHandler(modules, topics []string, started time.Time) *HealthHandler {
	return &HealthHandler{modules: modules, topics: topics, started: started}
}

// Get responds with the health payload.
func (h *HealthHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Modules: h.modules,
		Topics:  h.topics,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
	})
}

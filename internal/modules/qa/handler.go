package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
	"github.com/nfrund/risq/internal/middleware"
	"github.com/nfrund/risq/internal/pubsub"
	"github.com/nfrund/risq/internal/view"
	"github.com/nfrund/risq/web/src/templates/components"
)

// SubmittedEvent is the client-side event htmx fires from the HX-Trigger header.
const SubmittedEvent = "question-submitted"

// QuestionRequest is the DTO bound from the question form.
type QuestionRequest struct {
	Question string `form:"question" validate:"required"`
	Email    string `form:"email"`
}

// Handler serves the question form endpoint.
type Handler struct {
	delay     time.Duration
	publisher pubsub.Publisher
}

// NewHandler creates a handler whose submissions wait delay before completing.
func NewHandler(publisher pubsub.Publisher, delay time.Duration) *Handler {
	return &Handler{delay: delay, publisher: publisher}
}

// Post runs one simulated submission and answers once it has completed.
func (h *Handler) Post(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	raw := req
	req.Question = strings.TrimSpace(req.Question)

	if err := c.Validate(&req); err != nil {
		logger.Debug("Ignoring empty question", "error", domain.ErrEmptyQuestion)
		return h.ignored(c, raw)
	}

	form := NewForm(
		WithDelay(h.delay),
		WithLogger(logger),
		OnComplete(h.publish),
	)
	form.SetQuestion(req.Question)
	form.SetEmail(req.Email)

	done, ok := form.Submit(ctx)
	if !ok {
		return h.ignored(c, raw)
	}

	select {
	case <-done:
	case <-ctx.Done():
		// The visitor left; the submission still completes in the background.
		return ctx.Err()
	}

	if view.IsHTMX(c) {
		trigger, err := json.Marshal(map[string]any{
			SubmittedEvent: map[string]string{"message": content.QAAcknowledgment},
		})
		if err != nil {
			return fmt.Errorf("encode HX-Trigger: %w", err)
		}
		c.Response().Header().Set("HX-Trigger", string(trigger))
		return c.Render(http.StatusOK, "", components.QuestionForm(components.QuestionFormProps{}))
	}

	if err := view.SetFlashSuccess(c, content.QAAcknowledgment); err != nil {
		logger.Error("Failed to store acknowledgment flash", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, "/#"+string(domain.SectionQA))
}

// ignored answers a submission that never started, leaving the form as the
// visitor left it.
func (h *Handler) ignored(c echo.Context, req QuestionRequest) error {
	if view.IsHTMX(c) {
		return c.Render(http.StatusOK, "", components.QuestionForm(components.QuestionFormProps{
			Question: req.Question,
			Email:    req.Email,
		}))
	}
	return c.Redirect(http.StatusSeeOther, "/#"+string(domain.SectionQA))
}

func (h *Handler) publish(ctx context.Context, s domain.Submission) {
	if h.publisher == nil {
		return
	}
	if err := pubsub.Publish(ctx, h.publisher, TopicQuestionSubmitted, s); err != nil {
		middleware.FromContext(ctx).Error("Failed to publish question", "submission_id", s.ID.String(), "error", err)
	}
}

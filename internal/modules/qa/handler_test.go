package qa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/risq/internal/content"
	"github.com/nfrund/risq/internal/domain"
	"github.com/nfrund/risq/internal/handlers"
	"github.com/nfrund/risq/internal/pubsub"
	"github.com/nfrund/risq/internal/rendering"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages []pubsub.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []pubsub.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]pubsub.Message(nil), p.messages...)
}

func newTestServer(pub pubsub.Publisher) *echo.Echo {
	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	e.POST("/questions", NewHandler(pub, 5*time.Millisecond).Post)
	return e
}

func postQuestion(e *echo.Echo, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPost_HTMXSubmission(t *testing.T) {
	pub := &recordingPublisher{}
	e := newTestServer(pub)

	rec := postQuestion(e, url.Values{
		"question": {"  How does scoring work?  "},
		"email":    {"founder@example.com"},
	}, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var trigger map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &trigger))
	assert.Equal(t, content.QAAcknowledgment, trigger[SubmittedEvent]["message"])

	body := rec.Body.String()
	assert.Contains(t, body, `id="question-form"`)
	assert.NotContains(t, body, "How does scoring work?", "form should come back reset")
	assert.NotContains(t, body, "founder@example.com")

	msgs := pub.published()
	require.Len(t, msgs, 1)
	assert.Equal(t, TopicQuestionSubmitted.Name(), msgs[0].Topic)

	var s domain.Submission
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &s))
	assert.Equal(t, "How does scoring work?", s.Question)
	assert.Equal(t, "founder@example.com", s.Email)
	assert.False(t, s.SubmittedAt.IsZero())
}

func TestPost_HTMXEmptyQuestionIsIgnored(t *testing.T) {
	pub := &recordingPublisher{}
	e := newTestServer(pub)

	rec := postQuestion(e, url.Values{"question": {"   "}, "email": {"kept@example.com"}}, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
	assert.Contains(t, rec.Body.String(), `value="kept@example.com"`)
	assert.Empty(t, pub.published())
}

func TestPost_PlainSubmissionRedirectsWithFlash(t *testing.T) {
	pub := &recordingPublisher{}
	e := newTestServer(pub)

	rec := postQuestion(e, url.Values{"question": {"Is there a free tier?"}}, false)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#qa", rec.Header().Get(echo.HeaderLocation))
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "acknowledgment should be stored as a flash")
	assert.Len(t, pub.published(), 1)
}

func TestPost_PlainEmptyQuestionRedirectsWithoutSubmitting(t *testing.T) {
	pub := &recordingPublisher{}
	e := newTestServer(pub)

	rec := postQuestion(e, url.Values{"question": {""}}, false)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#qa", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
	assert.Empty(t, pub.published())
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/risq/internal/rendering"
	"github.com/nfrund/risq/internal/view"
	"github.com/nfrund/risq/web/src/templates/layouts"
)

func TestLandingHandler_Get(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))

	h := NewLandingHandler(layouts.PageConfig{BaseURL: "https://risq.example"})
	e.GET("/", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `content="https://risq.example/"`)
	assert.NotContains(t, body, `id="flash"`)
}

func TestLandingHandler_ShowsFlashOnce(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))

	e.POST("/flash", func(c echo.Context) error {
		if err := view.SetFlashSuccess(c, "Saved!"); err != nil {
			return err
		}
		return c.NoContent(http.StatusSeeOther)
	})
	e.GET("/", NewLandingHandler(layouts.PageConfig{}).Get)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/flash", nil))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Saved!")
}

func TestHealthHandler_Get(t *testing.T) {
	e := echo.New()
	h := NewHealthHandler([]string{"search", "qa"}, []string{"qa.question.submitted"}, time.Now().Add(-time.Minute))
	e.GET("/health", h.Get)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, []string{"search", "qa"}, body.Modules)
	assert.Equal(t, []string{"qa.question.submitted"}, body.Topics)
	assert.NotEmpty(t, body.Uptime)
}

func TestCustomValidator(t *testing.T) {
	type form struct {
		Question string `validate:"required"`
		Source   string `validate:"omitempty,oneof=hero cta"`
	}
	v := NewValidator()

	assert.NoError(t, v.Validate(&form{Question: "why?"}))
	assert.NoError(t, v.Validate(&form{Question: "why?", Source: "cta"}))
	assert.Error(t, v.Validate(&form{}))
	assert.Error(t, v.Validate(&form{Question: "why?", Source: "footer"}))
}

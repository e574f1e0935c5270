package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/risq/internal/handlers"
)

// captureLogs routes the default logger into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(original) })
	return &buf
}

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		accept     string
		err        error
		wantStatus int
		wantBody   string
		wantLog    []string
		checkJSON  *handlers.ErrorResponse
	}{
		{
			name:       "unhandled error logs a stack trace",
			method:     http.MethodGet,
			err:        errors.New("a deliberate unhandled error occurred"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error",
			wantLog: []string{
				"Internal Server Error (Unhandled)",
				`error="a deliberate unhandled error occurred"`,
				"stack_trace=",
				"runtime/debug/stack.go",
				"internal/server/server_test.go",
			},
		},
		{
			name:       "client error passes its message through at debug level",
			method:     http.MethodPost,
			err:        echo.NewHTTPError(http.StatusBadRequest, "unknown search source"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "unknown search source",
			wantLog:    []string{"level=DEBUG", `msg="HTTP error"`, "status=400"},
		},
		{
			name:       "server HTTPError is logged as an error",
			method:     http.MethodGet,
			err:        echo.NewHTTPError(http.StatusServiceUnavailable, "bus closed"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "bus closed",
			wantLog:    []string{"level=ERROR", `msg="HTTP error"`, "status=503"},
		},
		{
			name:       "non-string message falls back to the status text",
			method:     http.MethodGet,
			err:        echo.NewHTTPError(http.StatusTeapot, map[string]int{"x": 1}),
			wantStatus: http.StatusTeapot,
			wantBody:   http.StatusText(http.StatusTeapot),
		},
		{
			name:       "JSON clients get an ErrorResponse",
			method:     http.MethodGet,
			accept:     echo.MIMEApplicationJSON,
			err:        echo.NewHTTPError(http.StatusTooManyRequests, "slow down"),
			wantStatus: http.StatusTooManyRequests,
			checkJSON:  &handlers.ErrorResponse{Code: "too_many_requests", Message: "slow down"},
		},
		{
			name:       "HEAD requests get no body",
			method:     http.MethodHead,
			err:        echo.NewHTTPError(http.StatusNotFound, "missing"),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			e := echo.New()
			setupErrorHandling(e)
			e.Add(tt.method, "/fail", func(c echo.Context) error { return tt.err })

			req := httptest.NewRequest(tt.method, "/fail", nil)
			if tt.accept != "" {
				req.Header.Set(echo.HeaderAccept, tt.accept)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			switch {
			case tt.checkJSON != nil:
				var body handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, *tt.checkJSON, body)
			case tt.method == http.MethodHead:
				assert.Zero(t, rec.Body.Len())
			default:
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}

			for _, want := range tt.wantLog {
				assert.Contains(t, logs.String(), want)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponseIsLeftAlone(t *testing.T) {
	captureLogs(t)

	e := echo.New()
	setupErrorHandling(e)
	e.GET("/partial", func(c echo.Context) error {
		if err := c.String(http.StatusOK, "partial"); err != nil {
			return err
		}
		return errors.New("failed after writing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/partial", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

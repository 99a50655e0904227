package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
)

// completedLine returns the "request completed" record from buf.
func completedLine(t *testing.T, buf *bytes.Buffer) string {
	t.Helper()
	for line := range strings.Lines(buf.String()) {
		if strings.Contains(line, "request completed") {
			return line
		}
	}
	t.Fatalf("no completion record in %q", buf.String())
	return ""
}

func TestLogging_CompletionRecordCarriesRoute(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Patch("/api/v1/stages/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":5}`))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/v1/stages/5", http.NoBody))

	assert.Contains(t, buf.String(), "request started")
	line := completedLine(t, &buf)
	for _, want := range []string{
		"method=PATCH",
		"path=/api/v1/stages/5",
		"route=/api/v1/stages/{id}",
		"status=200",
		"bytes=8",
		"duration=",
	} {
		assert.Contains(t, line, want)
	}
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		level  string
	}{
		{name: "success", status: http.StatusOK, level: "level=INFO"},
		{name: "conflict", status: http.StatusConflict, level: "level=WARN"},
		{name: "storage failure", status: http.StatusServiceUnavailable, level: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(status(tt.status))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/stages/4", http.NoBody))

			assert.Contains(t, completedLine(t, &buf), tt.level)
		})
	}
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(testLogger(&buf)),
	)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("moving stage")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stages/2/move", http.NoBody)
	req.Header.Set("X-Request-ID", "req-move-1")
	req.Header.Set("X-Correlation-ID", "drag-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var handlerLine string
	for line := range strings.Lines(buf.String()) {
		if strings.Contains(line, "moving stage") {
			handlerLine = line
		}
	}
	require.NotEmpty(t, handlerLine)
	assert.Contains(t, handlerLine, "request_id=req-move-1")
	assert.Contains(t, handlerLine, "correlation_id=drag-42")
}

func TestLogging_RedactsAuthorizationAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(status(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "abc.def.ghi")
	assert.Contains(t, buf.String(), "[REDACTED]")
}

func TestLogging_NoHeaderDumpAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(logging.New("info", "text", &buf))(status(http.StatusOK))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody))

	assert.NotContains(t, buf.String(), "request headers")
}

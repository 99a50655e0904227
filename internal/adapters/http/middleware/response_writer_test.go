package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_TracksStatusAndBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *responseWriter)
		wantStatus int
		wantBytes  int64
		started    bool
	}{
		{
			name:       "nothing written",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			write:      func(rw *responseWriter) { rw.WriteHeader(http.StatusCreated) },
			wantStatus: http.StatusCreated,
			started:    true,
		},
		{
			name: "second status ignored",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusConflict)
				rw.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusConflict,
			started:    true,
		},
		{
			name: "implicit 200 with body",
			write: func(rw *responseWriter) {
				_, _ = rw.Write([]byte(`{"stages":[],`))
				_, _ = rw.Write([]byte(`"count":0}`))
			},
			wantStatus: http.StatusOK,
			wantBytes:  24,
			started:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			assert.Equal(t, tt.wantStatus, rw.status)
			assert.Equal(t, tt.wantBytes, rw.bytes)
			assert.Equal(t, tt.started, rw.started)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResponseWriter_UnwrapReachesRecorder(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	require.Same(t, rec, rw.Unwrap())
	require.NoError(t, http.NewResponseController(rw).Flush())
	assert.True(t, rec.Flushed)
}

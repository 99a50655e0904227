package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// stages returns names at positions 1..len(names) with IDs 1..len(names).
func stages(names ...string) []stage.Stage {
	out := make([]stage.Stage, len(names))
	for i, n := range names {
		out[i] = stage.Stage{ID: int64(i + 1), Name: n, Position: i + 1, CreatedAt: testTime, UpdatedAt: testTime}
	}
	return out
}

func projectIn(id, stageID int64, name string) project.Project {
	return project.Project{ID: id, Name: name, StageID: &stageID, CreatedAt: testTime, UpdatedAt: testTime}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireProblemField asserts a 400 problem response naming location.
func requireProblemField(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	requireStatus(t, rec, http.StatusBadRequest)
	problem := decodeJSON[dto.ErrorResponse](t, rec)
	for _, e := range problem.Errors {
		if e.Location == location {
			return
		}
	}
	t.Errorf("problem errors = %+v, want one at %q", problem.Errors, location)
}

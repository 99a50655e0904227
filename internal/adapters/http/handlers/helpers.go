package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stageboard/internal/domain"
)

// bodyLimit caps JSON request bodies. Stage and assignment payloads are a
// few dozen bytes.
const bodyLimit = 64 << 10

// pathID reads the {id} path parameter. A missing, non-numeric or
// non-positive id is answered with a 400 and ok is false.
func pathID(w http.ResponseWriter, r *http.Request) (id int64, ok bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err == nil && id > 0 {
		return id, true
	}
	dto.WriteErrorResponse(w, r, domain.NewValidationError("path.id", "must be a positive integer"))
	return 0, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("writing response body", slog.Int("status", status), slog.Any("error", err))
	}
}

// readBody decodes exactly one JSON object into dst. Unknown members,
// trailing content and oversized bodies are all rejected as a "body"
// validation error.
func readBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, bodyLimit))
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		if extra := dec.Decode(new(json.RawMessage)); extra != io.EOF {
			err = errors.New("trailing data")
		}
	}
	if err == nil {
		return nil
	}

	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return domain.NewValidationError("body", "body too large")
	}
	return domain.NewValidationError("body", "invalid JSON")
}

// decodeAndValidate fills dst from the request body and runs its Validate.
// Either failure is written as a problem response and reported as false.
func decodeAndValidate[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := readBody(w, r, dst)
	if err == nil {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

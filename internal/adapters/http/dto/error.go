package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/stageboard/internal/domain"
)

// storageRetryAfter is sent with 503s, in seconds. A failed store
// transaction leaves nothing behind, so retrying right away is safe.
const storageRetryAfter = "1"

// genericDetail and storageDetail replace the detail of unclassified and
// storage errors so driver messages stay in the logs.
const (
	genericDetail = "an unexpected error occurred"
	storageDetail = "storage is temporarily unavailable; retry the request"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail locates one invalid input, e.g. "body.position" or "path.id".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusBySentinel is checked in order; the first match wins.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{domain.ErrStorage, http.StatusServiceUnavailable},
}

func statusFor(err error) int {
	for _, s := range statusBySentinel {
		if errors.Is(err, s.sentinel) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse describes err as a problem document for request r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := problem(r, statusFor(err), err.Error())
	switch resp.Status {
	case http.StatusServiceUnavailable:
		resp.Detail = storageDetail
	case http.StatusInternalServerError:
		resp.Detail = genericDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse maps err to its status and writes it as
// application/problem+json. Storage and unclassified errors are logged here
// since the client only sees a fixed detail for them.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	switch resp.Status {
	case http.StatusServiceUnavailable:
		w.Header().Set("Retry-After", storageRetryAfter)
		slog.WarnContext(r.Context(), "storage unavailable", slog.Any("error", err))
	case http.StatusUnauthorized:
		w.Header().Set("WWW-Authenticate", `Bearer realm="stageboard"`)
	case http.StatusInternalServerError:
		slog.ErrorContext(r.Context(), "unclassified error", slog.Any("error", err))
	}
	send(w, r, resp)
}

// WriteProblem writes a problem for a status no domain error produced, such
// as an unknown route or an expired request deadline.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	send(w, r, problem(r, status, detail))
}

func problem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func send(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	h := w.Header()
	h.Set("Content-Type", "application/problem+json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response", slog.Any("error", err))
	}
}

// fieldDetails turns validation fields into details sorted by location. A
// field already qualified with "path." or "query." keeps its name, "body"
// means the whole body, and any other name is a member of the body.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := field
		if field != "body" && !strings.HasPrefix(field, "path.") && !strings.HasPrefix(field, "query.") {
			loc = "body." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int { return cmp.Compare(a.Location, b.Location) })
	return details
}

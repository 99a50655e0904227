// Package acl is the anti-corruption layer between this service and the
// remote project-record API. DTOs and translators for that API live in
// acl/project; shared request handling and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/stageboard/internal/domain"
)

// problemReadLimit caps how much of a failed response body is decoded.
const problemReadLimit = 64 << 10

// remoteProblem holds the parts of a project API problem+json body that
// survive translation.
type remoteProblem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// statusKinds maps project API statuses onto domain sentinels. Auth
// failures mean this service's own token was refused, which callers see as
// forbidden rather than as their own authentication problem.
var statusKinds = map[int]error{
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// remoteError converts a non-2xx project API response into a domain error.
// Field errors on a validation failure come back as *domain.ValidationError
// keyed by field name.
func remoteError(resp *http.Response) error {
	p := readProblem(resp)
	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	kind, known := statusKinds[resp.StatusCode]
	if resp.StatusCode >= http.StatusInternalServerError {
		kind, known = domain.ErrUnavailable, true
	}

	switch {
	case !known:
		return fmt.Errorf("project api answered %d: %s", resp.StatusCode, detail)
	case kind == domain.ErrValidation && len(p.Errors) > 0:
		fields := make(map[string]string, len(p.Errors))
		for _, e := range p.Errors {
			fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	default:
		return fmt.Errorf("project api: %s: %w", detail, kind)
	}
}

// readProblem decodes a problem+json body. Anything else yields the zero
// value.
func readProblem(resp *http.Response) remoteProblem {
	var p remoteProblem
	if resp.Body == nil {
		return p
	}
	if mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mt != "application/problem+json" {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, problemReadLimit)).Decode(&p); err != nil {
		return remoteProblem{}
	}
	return p
}

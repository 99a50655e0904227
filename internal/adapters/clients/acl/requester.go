package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/platform/httpclient"
)

// Requester owns the HTTP request lifecycle for the project API: JSON
// encoding, execution through httpclient.Client, body cleanup, status
// translation and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method to path under the client's base URL. reqBody is encoded as
// JSON when non-nil; respBody, when non-nil, receives the decoded 2xx body.
// Non-2xx responses become domain errors via remoteError, and transport
// failures are reported as domain.ErrUnavailable. POST and PATCH requests get
// a fresh Idempotency-Key so the client may replay them.
func (r *Requester) Do(ctx context.Context, method, path string, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	return r.execute(req, respBody)
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	url := r.client.BaseURL() + path

	if reqBody == nil {
		req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
		}
		return req, nil
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodPost || method == http.MethodPatch {
		req.Header.Set(httpclient.HeaderIdempotencyKey, uuid.NewString())
	}
	return req, nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.String("error", err.Error()))
	}
}

func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status still carry the last response.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			return remoteError(resp)
		}
		r.logger.ErrorContext(ctx, "project api request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.logger.ErrorContext(ctx, "unexpected status from project api",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return remoteError(resp)
	}

	if respBody != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}

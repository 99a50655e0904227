package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/stageboard/internal/platform/config"
	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
)

// backoffPolicy is exponential backoff with ±25% jitter.
type backoffPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
	jitter     func() float64 // in [0, 1)
}

func newBackoffPolicy(cfg config.RetryConfig) backoffPolicy {
	return backoffPolicy{
		attempts:   cfg.MaxAttempts,
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
		jitter:     rand.Float64,
	}
}

// delay is the wait before retry n (1-based). The ceiling applies before
// jitter.
func (p backoffPolicy) delay(n int) time.Duration {
	d := min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.ceiling))
	d += d * 0.25 * (2*p.jitter() - 1)
	return time.Duration(max(d, 0))
}

// send performs req, retrying transport errors and 429/5xx responses while
// the request is replayable and attempts remain.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.policy.attempts < 1 {
		return nil, fmt.Errorf("httpclient: max_attempts must be at least 1, got %d", c.policy.attempts)
	}
	attempts := c.policy.attempts
	if !replayable(req) {
		attempts = 1
	}

	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for n := range attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, hint, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			lastErr, hint = err, 0
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.name)
		if n == attempts-1 {
			return resp, lastErr
		}
		hint = retryAfter(resp.Header.Get("Retry-After"), time.Now())
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return nil, lastErr
}

// pause waits out the backoff for retry n, or the server's Retry-After hint
// when that is longer, never beyond the ceiling.
func (c *Client) pause(ctx context.Context, req *http.Request, n int, hint time.Duration, cause error) error {
	wait := c.policy.delay(n)
	if hint > wait {
		wait = min(hint, c.policy.ceiling)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying project api request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.name),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.policy.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// replayable reports whether sending req twice has the same effect as once.
// POST and PATCH qualify only with an Idempotency-Key.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	}
	return req.Header.Get(HeaderIdempotencyKey) != ""
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// snapshotBody reads the request body once so each attempt can resend it.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// retryAfter parses Retry-After as delta seconds or an HTTP date. Missing,
// malformed and past values give zero.
func retryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

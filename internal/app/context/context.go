// Package appctx carries per-request state for the stage service: a memo of
// lookups already made in this request and a queue of undoable actions that
// run on Commit. Draining a stage queues one action per project; if any of
// them fails, the projects already moved are put back.
//
//	rc := appctx.FromContext(ctx)
//	target, err := appctx.GetOrFetch(rc, "stage:7", fetchStage)
//	_ = rc.AddGroup(moveA, moveB)
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrAlreadyCommitted is returned by any queue operation after Commit.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")
	// ErrNilAction rejects a nil domain.Action.
	ErrNilAction = errors.New("appctx: nil action")
	// ErrTypeMismatch means one memo key was read as two different types.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

type ctxKey struct{}

// RequestContext is a context.Context plus the request's memo and action
// queue. Only the queue may be used from several goroutines.
type RequestContext struct {
	context.Context
	memo map[string]memoized

	queueMu   sync.Mutex
	steps     []step
	committed bool
}

// memoized keeps failures too, so a missing stage is looked up once.
type memoized struct {
	value any
	err   error
}

// New wraps ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: map[string]memoized{}}
}

// WithRequestContext returns ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext in ctx. Outside an HTTP request
// (stagectl, tests) there is none and a fresh one is made.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	if rc == nil {
		rc = New(ctx)
	}
	return rc
}

// Committed reports whether Commit has run.
func (rc *RequestContext) Committed() bool {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return rc.committed
}

// GetOrFetch returns what fetch produced the first time key was asked for
// in this request, calling fetch only on a miss.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	m, hit := rc.memo[key]
	if !hit {
		v, err := fetch(rc.Context)
		rc.memo[key] = memoized{value: v, err: err}
		return v, err
	}

	var zero T
	if m.err != nil {
		return zero, m.err
	}
	v, ok := m.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, m.value, zero)
	}
	return v, nil
}

// Forget drops key so the next GetOrFetch sees a write made since.
func (rc *RequestContext) Forget(key string) {
	delete(rc.memo, key)
}

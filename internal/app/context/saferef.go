package appctx

import "sync"

// SafeRef is a mutex-guarded value for state the actions of one group
// share, such as the IDs a drain has moved so far.
type SafeRef[T any] struct {
	mu sync.Mutex
	v  T
}

// NewRef returns a SafeRef holding v.
func NewRef[T any](v T) *SafeRef[T] {
	return &SafeRef[T]{v: v}
}

// Load returns the current value. Reference types such as slices still
// alias the guarded value, so copy before handing them out.
func (r *SafeRef[T]) Load() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.v
}

// Update mutates the value in place while holding the lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	fn(&r.v)
	r.mu.Unlock()
}

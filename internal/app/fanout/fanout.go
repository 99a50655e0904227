// Package fanout maps a function over a slice with bounded concurrency,
// keeping one result per input in input order. The board view uses it to load
// every stage column's projects in parallel.
package fanout

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Result is fn's outcome for one input.
type Result[R any] struct {
	Value R
	Err   error
}

// Run applies fn to every item with at most maxWorkers calls in flight
// (values below 1 mean 1). One item's failure does not stop the others.
// Items that have not started when ctx ends get ctx.Err() and fn is never
// called for them.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Collect returns the values of results, or every error joined if any
// item failed.
func Collect[R any](results []Result[R]) ([]R, error) {
	values := make([]R, len(results))
	var errs []error
	for i, r := range results {
		values[i] = r.Value
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return values, nil
}

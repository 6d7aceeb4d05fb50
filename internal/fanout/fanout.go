// Package fanout runs a function over a batch of items in parallel and
// collects the results in input order.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for every item in its own goroutine and returns the results
// in the order of items. With limit > 0 at most limit calls run at once,
// otherwise all items are started immediately.
//
// fn cannot fail the batch. Work that can fail reports it in R.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) R) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			results[i] = fn(gctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

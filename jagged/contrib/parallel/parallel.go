// Package parallel is an optional helper for the one concurrency pattern
// the reduction core explicitly sanctions: a caller invoking several
// independent ReduceNext calls on disjoint data, with no synchronization
// needed between them because jagged.Content values never share mutable
// state. It is not used anywhere inside the jagged/contrib packages
// themselves — those always run a single reduction sequentially — it
// exists purely for callers that want to fan reductions for several
// unrelated arrays (or several unrelated columns of one record) out
// across goroutines, mirroring the teacher's own worker-fan-out helpers
// in hwy/contrib/nn/parallel.go and hwy/contrib/activation/parallel.go.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Reductions runs each of fns concurrently and returns the first error
// encountered, if any, cancelling ctx for the remaining goroutines the way
// errgroup.WithContext does. Each fn is expected to operate on disjoint
// data (the reduction core gives every caller its own Content values; this
// helper does not itself enforce disjointness).
func Reductions(ctx context.Context, fns ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		g.Go(func() error { return fn(gctx) })
	}
	return g.Wait()
}

// Limited is like Reductions but caps the number of goroutines running at
// once via errgroup.Group.SetLimit, for a caller fanning out over more
// independent reductions than it wants live at one time (e.g. one per
// column of a wide record, with a worker limit tied to GOMAXPROCS).
func Limited(ctx context.Context, limit int, fns ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, fn := range fns {
		g.Go(func() error { return fn(gctx) })
	}
	return g.Wait()
}

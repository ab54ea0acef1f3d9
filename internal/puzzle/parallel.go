package puzzle

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// MapSum applies fn to every item on a fixed pool of workers and sums the
// results. Items are independent; the first error cancels the remaining work.
// workers <= 0 means GOMAXPROCS.
func MapSum[T any](ctx context.Context, workers int, items []T, fn func(T) (int, error)) (int, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var total atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(item)
			if err != nil {
				return err
			}
			total.Add(int64(v))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int(total.Load()), nil
}

// Count is MapSum over a predicate.
func Count[T any](ctx context.Context, workers int, items []T, pred func(T) bool) (int, error) {
	return MapSum(ctx, workers, items, func(item T) (int, error) {
		if pred(item) {
			return 1, nil
		}
		return 0, nil
	})
}

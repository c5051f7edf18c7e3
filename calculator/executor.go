package calculator

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// executor runs tasks 0..n-1. Tasks write to their own slots, so order is
// restored by the caller.
type executor interface {
	dispatch(ctx context.Context, n int, f func(ctx context.Context, i int) error) error
}

// executorSequential runs tasks one after another on the calling goroutine.
type executorSequential struct{}

func (executorSequential) dispatch(ctx context.Context, n int, f func(ctx context.Context, i int) error) error {
	for i := 0; i < n; i++ {
		if err := f(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// executorBaseOnMaterial hands one material per task to a bounded set of workers.
type executorBaseOnMaterial struct {
	workers int
}

func newExecutorBaseOnMaterial(workers int) *executorBaseOnMaterial {
	if workers < 1 {
		workers = 1
	}
	return &executorBaseOnMaterial{workers: workers}
}

func (e *executorBaseOnMaterial) dispatch(ctx context.Context, n int, f func(ctx context.Context, i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return f(ctx, i)
		})
	}
	return g.Wait()
}

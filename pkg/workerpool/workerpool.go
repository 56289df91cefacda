// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"fmt"
	"sync"
)

// Process runs a worker pool over the provided work items, invoking process for each.
// If process returns an error, the pool cancels the context and stops further work.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	return ProcessWith(ctx, workerCount, items,
		func(context.Context) (struct{}, error) { return struct{}{}, nil },
		func(ctx context.Context, _ struct{}, item T) error { return process(ctx, item) },
		onCancel,
	)
}

// ProcessWith is Process with a per-worker state built by newState when the worker starts.
// The state is owned by that worker for its whole lifetime and never shared.
func ProcessWith[S, T any](
	ctx context.Context,
	workerCount int,
	items []T,
	newState func(context.Context) (S, error),
	process func(context.Context, S, T) error,
	onCancel func(),
) error {
	if workerCount <= 0 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}

	fail := func(err error) {
		select {
		case errs <- err:
		default:
		}
		if onCancel != nil {
			onCancel()
		}
		cancel()
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			state, err := newState(ctx)
			if err != nil {
				fail(fmt.Errorf("init worker %d: %w", worker, err))
				return
			}
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, state, item); err != nil {
						fail(err)
						return
					}
				}
			}
		}(i)
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

package workerpool

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/retry"
	"go.uber.org/zap"
)

// ResourceFactory builds a resource owned by a single worker, e.g. an RPC client.
type ResourceFactory[R any] func(ctx context.Context) (R, error)

// Executor splits work into fixed-size chunks and runs them on a bounded pool of workers,
// retrying each chunk according to its policy. The first chunk that exhausts its retries
// aborts the whole execution.
type Executor[R any] struct {
	batchSize   int
	workerCount int
	policy      retry.Policy
	newResource ResourceFactory[R]
	logger      *zap.Logger
}

// NewExecutor constructs an Executor. Non-positive sizes fall back to 1.
func NewExecutor[R any](batchSize, workerCount int, policy retry.Policy, newResource ResourceFactory[R], logger *zap.Logger) *Executor[R] {
	if batchSize <= 0 {
		batchSize = 1
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor[R]{
		batchSize:   batchSize,
		workerCount: workerCount,
		policy:      policy,
		newResource: newResource,
		logger:      logger,
	}
}

// BatchSize returns the configured chunk size.
func (e *Executor[R]) BatchSize() int { return e.batchSize }

// WorkerCount returns the configured worker count.
func (e *Executor[R]) WorkerCount() int { return e.workerCount }

type chunk[T any] struct {
	offset int
	items  []T
}

// Execute runs handle over items in chunks. It returns nothing but an error: handle is
// expected to deliver its output as a side effect. Completion order across chunks is not defined.
func Execute[T, R any](ctx context.Context, e *Executor[R], items []T, handle func(context.Context, R, []T) error) error {
	if len(items) == 0 {
		return nil
	}

	chunks := make([]chunk[T], 0, (len(items)+e.batchSize-1)/e.batchSize)
	for start := 0; start < len(items); start += e.batchSize {
		end := start + e.batchSize
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, chunk[T]{offset: start, items: items[start:end]})
	}

	workers := e.workerCount
	if workers > len(chunks) {
		workers = len(chunks)
	}

	return ProcessWith(ctx, workers, chunks,
		func(ctx context.Context) (R, error) {
			return e.newResource(ctx)
		},
		func(ctx context.Context, resource R, c chunk[T]) error {
			op := fmt.Sprintf("chunk [%d:%d]", c.offset, c.offset+len(c.items))
			err := retry.Do(ctx, e.policy, e.logger, op, func(ctx context.Context) error {
				return handle(ctx, resource, c.items)
			})
			if err != nil {
				e.logger.Error("chunk failed", zap.Int("offset", c.offset), zap.Int("size", len(c.items)), zap.Error(err))
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		},
		nil,
	)
}

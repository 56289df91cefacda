package streamer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/clock"
	"go.uber.org/zap"
)

const defaultPeriod = 10 * time.Second

// Config controls the sync loop.
type Config struct {
	// StartBlock is the first block exported when no checkpoint exists. Nil means block 0.
	StartBlock *uint64
	// EndBlock stops the loop once it has been exported. Nil follows the tip forever.
	EndBlock *uint64
	// Lag is the number of blocks to stay behind the tip.
	Lag uint64
	// BlockBatchSize caps the blocks exported per iteration.
	BlockBatchSize uint64
	// Period is the idle wait once caught up, and the pause before retrying a failed range.
	Period time.Duration
	// RetryErrors retries a failed range after Period instead of returning the error.
	RetryErrors bool
}

// Streamer is the sync driver. Only one block range is in flight at a time.
type Streamer struct {
	cfg         Config
	exporter    RangeExporter
	checkpoint  CheckpointStore
	metrics     StreamerMetrics
	logger      *zap.Logger
	sleep       func(context.Context, time.Duration) error
	blockSignal <-chan struct{}
}

// Option customizes a Streamer.
type Option func(*Streamer)

// WithBlockSignal wakes the idle wait early whenever the node announces a new block.
func WithBlockSignal(signal <-chan struct{}) Option {
	return func(s *Streamer) { s.blockSignal = signal }
}

// NewStreamer builds a Streamer.
func NewStreamer(cfg Config, exporter RangeExporter, checkpoint CheckpointStore, metrics StreamerMetrics, logger *zap.Logger, opts ...Option) (*Streamer, error) {
	if exporter == nil {
		return nil, errors.New("range exporter is required")
	}
	if checkpoint == nil {
		return nil, errors.New("checkpoint store is required")
	}
	if metrics == nil {
		return nil, errors.New("streamer metrics is required")
	}
	if cfg.BlockBatchSize == 0 {
		return nil, errors.New("block batch size must be positive")
	}
	if cfg.StartBlock != nil && cfg.EndBlock != nil && *cfg.StartBlock > *cfg.EndBlock {
		return nil, fmt.Errorf("start block %d is above end block %d", *cfg.StartBlock, *cfg.EndBlock)
	}
	if cfg.Period <= 0 {
		cfg.Period = defaultPeriod
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Streamer{
		cfg:        cfg,
		exporter:   exporter,
		checkpoint: checkpoint,
		metrics:    metrics,
		logger:     logger.Named("streamer"),
		sleep:      clock.SleepWithContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run syncs until the context is canceled, an unrecoverable error occurs or EndBlock is reached.
func (s *Streamer) Run(ctx context.Context) (err error) {
	next, err := s.nextBlock()
	if err != nil {
		return err
	}

	if err := s.exporter.Open(ctx); err != nil {
		return fmt.Errorf("open exporter: %w", err)
	}
	defer func() {
		if closeErr := s.exporter.Close(context.WithoutCancel(ctx)); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close exporter: %w", closeErr))
		}
	}()

	s.logger.Info("starting sync", zap.Uint64("next_block", next))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.cfg.EndBlock != nil && next > *s.cfg.EndBlock {
			s.logger.Info("reached end block", zap.Uint64("end_block", *s.cfg.EndBlock))
			return nil
		}

		synced, err := s.syncStep(ctx, next)
		if err != nil {
			var checkpointErr *checkpointError
			if !s.cfg.RetryErrors || errors.As(err, &checkpointErr) || ctx.Err() != nil {
				return err
			}
			s.logger.Warn("sync failed, retrying range", zap.Uint64("next_block", next), zap.Error(err), zap.Duration("sleep", s.cfg.Period))
			if sleepErr := s.sleep(ctx, s.cfg.Period); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		if synced == 0 {
			s.logger.Debug("nothing to sync, sleeping", zap.Duration("sleep", s.cfg.Period))
			if err := s.wait(ctx); err != nil {
				return err
			}
			continue
		}
		next += synced
	}
}

type checkpointError struct{ err error }

func (e *checkpointError) Error() string { return "save checkpoint: " + e.err.Error() }
func (e *checkpointError) Unwrap() error { return e.err }

// syncStep exports the next range, if any, and returns the number of blocks synced.
func (s *Streamer) syncStep(ctx context.Context, next uint64) (uint64, error) {
	tip, err := s.exporter.CurrentBlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get current block number: %w", err)
	}
	s.metrics.SetTip(tip)

	end, ok := s.rangeEnd(next, tip)
	if !ok {
		return 0, nil
	}

	blocks := end - next + 1
	s.logger.Info("syncing blocks", zap.Uint64("start", next), zap.Uint64("end", end), zap.Uint64("tip", tip))

	started := time.Now()
	err = s.exporter.ExportAll(ctx, next, end)
	s.metrics.ObserveSyncRange(err, blocks, started)
	if err != nil {
		return 0, fmt.Errorf("export blocks [%d, %d]: %w", next, end, err)
	}

	if err := s.checkpoint.Save(end); err != nil {
		return 0, &checkpointError{err: err}
	}
	s.metrics.SetCheckpoint(end)
	return blocks, nil
}

// rangeEnd computes the last block of the range starting at next, given the tip.
// ok is false when nothing is behind the lagging tip yet.
func (s *Streamer) rangeEnd(next, tip uint64) (uint64, bool) {
	if tip < s.cfg.Lag {
		return 0, false
	}
	safeTip := tip - s.cfg.Lag
	if next > safeTip {
		return 0, false
	}

	end := safeTip
	if span := safeTip - next; span >= s.cfg.BlockBatchSize {
		end = next + s.cfg.BlockBatchSize - 1
	}
	if s.cfg.EndBlock != nil && end > *s.cfg.EndBlock {
		end = *s.cfg.EndBlock
	}
	return end, true
}

// nextBlock returns the first block to export: one past the checkpoint, or StartBlock on the first run.
func (s *Streamer) nextBlock() (uint64, error) {
	last, ok, err := s.checkpoint.Load()
	if err != nil {
		return 0, err
	}
	if ok {
		if s.cfg.StartBlock != nil && *s.cfg.StartBlock != last+1 {
			s.logger.Warn("checkpoint overrides configured start block",
				zap.Uint64("start_block", *s.cfg.StartBlock),
				zap.Uint64("checkpoint", last),
				zap.Uint64("next_block", last+1))
		}
		s.metrics.SetCheckpoint(last)
		return last + 1, nil
	}
	if s.cfg.StartBlock != nil {
		return *s.cfg.StartBlock, nil
	}
	return 0, nil
}

func (s *Streamer) wait(ctx context.Context) error {
	if s.blockSignal == nil {
		return s.sleep(ctx, s.cfg.Period)
	}

	timer := time.NewTimer(s.cfg.Period)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.blockSignal:
		return nil
	case <-timer.C:
		return nil
	}
}

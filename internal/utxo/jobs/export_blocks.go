package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/retry"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/workerpool"
	"go.uber.org/zap"
)

var (
	// ErrInvalidRange is returned when the start block is above the end block.
	ErrInvalidRange = errors.New("start block must not exceed end block")
	// ErrNoEntityTypes is returned when neither blocks nor transactions are requested.
	ErrNoEntityTypes = errors.New("at least one of blocks or transactions must be exported")
)

// ExportBlocksConfig selects the range and entities of an ExportBlocksJob.
type ExportBlocksConfig struct {
	StartBlock         uint64
	EndBlock           uint64
	ExportBlocks       bool
	ExportTransactions bool
}

// ExportBlocksJob fetches full blocks for a height range and exports block and transaction items.
type ExportBlocksJob struct {
	cfg      ExportBlocksConfig
	executor *Executor
	mapper   *bitcoin.Mapper
	exporter ItemExporter
	logger   *zap.Logger
}

// NewExportBlocksJob validates cfg and builds the job.
func NewExportBlocksJob(cfg ExportBlocksConfig, executor *Executor, mapper *bitcoin.Mapper, exporter ItemExporter, logger *zap.Logger) (*ExportBlocksJob, error) {
	if cfg.StartBlock > cfg.EndBlock {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, cfg.StartBlock, cfg.EndBlock)
	}
	if !cfg.ExportBlocks && !cfg.ExportTransactions {
		return nil, ErrNoEntityTypes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportBlocksJob{
		cfg:      cfg,
		executor: executor,
		mapper:   mapper,
		exporter: exporter,
		logger:   logger.Named("export_blocks"),
	}, nil
}

// Run exports every block in the configured range. The exporter is opened before and closed after.
func (j *ExportBlocksJob) Run(ctx context.Context) (err error) {
	if err := j.exporter.Open(ctx); err != nil {
		return fmt.Errorf("open exporter: %w", err)
	}
	defer func() {
		if closeErr := j.exporter.Close(ctx); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close exporter: %w", closeErr))
		}
	}()

	heights := make([]uint64, 0, j.cfg.EndBlock-j.cfg.StartBlock+1)
	for h := j.cfg.StartBlock; ; h++ {
		heights = append(heights, h)
		if h == j.cfg.EndBlock {
			break
		}
	}

	if err := workerpool.Execute(ctx, j.executor, heights, j.exportBatch); err != nil {
		return fmt.Errorf("export blocks [%d, %d]: %w", j.cfg.StartBlock, j.cfg.EndBlock, err)
	}
	return nil
}

func (j *ExportBlocksJob) exportBatch(ctx context.Context, client RPCClient, heights []uint64) error {
	hashes, err := client.GetBlockHashes(ctx, heights)
	if err != nil {
		return fmt.Errorf("get block hashes: %w", err)
	}
	if len(hashes) != len(heights) {
		return retry.Permanent(fmt.Errorf("requested %d block hashes, got %d", len(heights), len(hashes)))
	}
	payloads, err := client.GetBlocks(ctx, hashes)
	if err != nil {
		return fmt.Errorf("get blocks: %w", err)
	}
	if len(payloads) != len(hashes) {
		return retry.Permanent(fmt.Errorf("requested %d blocks, got %d", len(hashes), len(payloads)))
	}

	items := make([]model.Item, 0, len(payloads))
	for i, payload := range payloads {
		block, err := j.mapper.MapBlock(payload)
		if err != nil {
			return retry.Permanent(fmt.Errorf("map block %s: %w", hashes[i], err))
		}
		if block.Number != heights[i] || block.Hash != hashes[i] {
			return retry.Permanent(fmt.Errorf("block %s at height %d does not match requested height %d", block.Hash, block.Number, heights[i]))
		}

		txs := make([]model.Transaction, 0, len(block.Transactions))
		for _, tx := range block.Transactions {
			if bitcoin.IsDuplicateTransaction(j.mapper.Network(), block, tx.Hash) {
				j.logger.Info("skipping duplicate transaction",
					zap.Uint64("block", block.Number),
					zap.String("tx", tx.Hash),
				)
				continue
			}
			txs = append(txs, tx)
		}

		if j.cfg.ExportBlocks {
			b := block
			b.Transactions = txs
			if j.cfg.ExportTransactions {
				b.Transactions = nil
			}
			items = append(items, model.NewBlockItem(b))
		}
		if j.cfg.ExportTransactions {
			for _, tx := range txs {
				items = append(items, model.NewTransactionItem(tx))
			}
		}
	}

	if err := j.exporter.ExportItems(ctx, items); err != nil {
		return fmt.Errorf("export items: %w", err)
	}
	return nil
}

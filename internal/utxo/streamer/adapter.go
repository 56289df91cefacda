package streamer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/identity"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/jobs"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"go.uber.org/zap"
)

// ErrEnrichedCountMismatch means enrichment returned a different number of transactions than it was given.
var ErrEnrichedCountMismatch = errors.New("enriched transaction count mismatch")

// AdapterConfig selects what the adapter exports.
type AdapterConfig struct {
	EntityTypes []model.ItemType
	Enrich      bool
}

// Adapter composes the extraction jobs into a single block-range export.
type Adapter struct {
	cfg        AdapterConfig
	tip        TipSource
	executor   *jobs.Executor
	mapper     *bitcoin.Mapper
	exporter   ItemExporter
	calculator *identity.Calculator
	logger     *zap.Logger
	// enrich runs transaction enrichment; replaced in tests.
	enrich func(ctx context.Context, transactions []model.Transaction) ([]model.Transaction, error)
}

// NewAdapter validates cfg and builds an Adapter. tip is queried for the current height; the
// executor supplies per-worker RPC clients to the jobs.
func NewAdapter(
	cfg AdapterConfig,
	tip TipSource,
	executor *jobs.Executor,
	mapper *bitcoin.Mapper,
	exporter ItemExporter,
	logger *zap.Logger,
) (*Adapter, error) {
	if len(cfg.EntityTypes) == 0 {
		return nil, jobs.ErrNoEntityTypes
	}
	for _, t := range cfg.EntityTypes {
		if !model.ContainsItemType(model.AllItemTypes, t) {
			return nil, fmt.Errorf("unknown entity type %q", t)
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Adapter{
		cfg:        cfg,
		tip:        tip,
		executor:   executor,
		mapper:     mapper,
		exporter:   exporter,
		calculator: identity.NewCalculator(logger),
		logger:     logger.Named("adapter"),
	}
	a.enrich = a.runEnrichJob
	return a, nil
}

// Open opens the item exporter.
func (a *Adapter) Open(ctx context.Context) error {
	return a.exporter.Open(ctx)
}

// Close closes the item exporter.
func (a *Adapter) Close(ctx context.Context) error {
	return a.exporter.Close(ctx)
}

// CurrentBlockNumber returns the node's tip height.
func (a *Adapter) CurrentBlockNumber(ctx context.Context) (uint64, error) {
	return a.tip.GetBlockCount(ctx)
}

// ExportAll extracts [startBlock, endBlock] and hands the requested items to the exporter in one call.
func (a *Adapter) ExportAll(ctx context.Context, startBlock, endBlock uint64) error {
	started := time.Now()
	wantBlocks := a.wants(model.ItemTypeBlock)
	wantTransactions := a.wants(model.ItemTypeTransaction)
	wantTraces := a.wants(model.ItemTypeTrace)

	staging := jobs.NewInMemoryExporter()
	blocksJob, err := jobs.NewExportBlocksJob(jobs.ExportBlocksConfig{
		StartBlock:         startBlock,
		EndBlock:           endBlock,
		ExportBlocks:       wantBlocks,
		ExportTransactions: wantTransactions || wantTraces,
	}, a.executor, a.mapper, staging, a.logger)
	if err != nil {
		return err
	}
	if err := blocksJob.Run(ctx); err != nil {
		return err
	}
	transactions := staging.Transactions()

	exported := transactions
	if a.cfg.Enrich && wantTransactions {
		exported, err = a.enrich(ctx, transactions)
		if err != nil {
			return fmt.Errorf("enrich blocks [%d, %d]: %w", startBlock, endBlock, err)
		}
		if len(exported) != len(transactions) {
			return fmt.Errorf("%w: blocks [%d, %d]: got %d, want %d",
				ErrEnrichedCountMismatch, startBlock, endBlock, len(exported), len(transactions))
		}
	}

	items := make([]model.Item, 0)
	if wantBlocks {
		items = append(items, staging.Items(model.ItemTypeBlock)...)
	}
	if wantTransactions {
		for _, tx := range exported {
			items = append(items, model.NewTransactionItem(tx))
		}
	}
	if wantTraces {
		// Traces come from the transactions as extracted, not the enriched copies.
		traceStaging := jobs.NewInMemoryExporter()
		if err := jobs.NewExtractTracesJob(transactions, traceStaging).Run(ctx); err != nil {
			return fmt.Errorf("extract traces [%d, %d]: %w", startBlock, endBlock, err)
		}
		items = append(items, traceStaging.Items(model.ItemTypeTrace)...)
	}

	a.calculator.Assign(items)

	if err := a.exporter.ExportItems(ctx, items); err != nil {
		return fmt.Errorf("export items for blocks [%d, %d]: %w", startBlock, endBlock, err)
	}

	a.logger.Info("exported block range",
		zap.Uint64("start", startBlock),
		zap.Uint64("end", endBlock),
		zap.Int("items", len(items)),
		zap.Duration("took", time.Since(started)),
	)
	return nil
}

func (a *Adapter) runEnrichJob(ctx context.Context, transactions []model.Transaction) ([]model.Transaction, error) {
	staging := jobs.NewInMemoryExporter()
	if err := jobs.NewEnrichTransactionsJob(transactions, a.executor, a.mapper, staging, a.logger).Run(ctx); err != nil {
		return nil, err
	}
	return staging.Transactions(), nil
}

func (a *Adapter) wants(t model.ItemType) bool {
	return model.ContainsItemType(a.cfg.EntityTypes, t)
}

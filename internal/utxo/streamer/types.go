// Package streamer drives incremental extraction: it tracks the last synced block, picks the
// next range behind the lagging tip, exports it and persists progress.
package streamer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TipSource reports the node's current block height.
	TipSource interface {
		GetBlockCount(ctx context.Context) (uint64, error)
	}
	// ItemExporter consumes the final item batch of every range.
	ItemExporter interface {
		Open(ctx context.Context) error
		ExportItems(ctx context.Context, items []model.Item) error
		Close(ctx context.Context) error
	}
	// RangeExporter exports block ranges; Adapter is the production implementation.
	RangeExporter interface {
		Open(ctx context.Context) error
		Close(ctx context.Context) error
		CurrentBlockNumber(ctx context.Context) (uint64, error)
		ExportAll(ctx context.Context, startBlock, endBlock uint64) error
	}
	// CheckpointStore persists the last synced block.
	CheckpointStore interface {
		Load() (uint64, bool, error)
		Save(block uint64) error
	}
	// StreamerMetrics records sync loop metrics.
	StreamerMetrics interface {
		ObserveSyncRange(err error, blocks uint64, started time.Time)
		SetCheckpoint(block uint64)
		SetTip(block uint64)
	}
)

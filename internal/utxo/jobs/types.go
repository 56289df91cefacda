// Package jobs implements the extraction jobs composed by the streamer: block export,
// input enrichment and trace derivation.
package jobs

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/rpc"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/workerpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the subset of the node gateway used by the jobs. Each executor worker owns one.
	RPCClient interface {
		GetBlockHashes(ctx context.Context, heights []uint64) ([]string, error)
		GetBlocks(ctx context.Context, hashes []string) ([]rpc.Block, error)
		GetRawTransactions(ctx context.Context, hashes []string) ([]rpc.Transaction, error)
	}
	// ItemExporter receives the items produced by a job.
	ItemExporter interface {
		Open(ctx context.Context) error
		ExportItems(ctx context.Context, items []model.Item) error
		Close(ctx context.Context) error
	}
)

// Executor runs job chunks on workers that each own an RPCClient.
type Executor = workerpool.Executor[RPCClient]

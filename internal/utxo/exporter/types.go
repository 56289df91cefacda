// Package exporter delivers item batches to the configured outputs.
package exporter

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ItemExporter is implemented by every output. ExportItems returns only once the items are durable
	// in the output, so the caller may advance its checkpoint afterwards.
	ItemExporter interface {
		Open(ctx context.Context) error
		ExportItems(ctx context.Context, items []model.Item) error
		Close(ctx context.Context) error
	}
	// ClickHouseRepository stores items in ClickHouse tables.
	ClickHouseRepository interface {
		InsertBlocks(ctx context.Context, items []model.Item) error
		InsertTransactions(ctx context.Context, items []model.Item) error
		InsertTraces(ctx context.Context, items []model.Item) error
		Ping(ctx context.Context) error
		Close() error
	}
	// PostgresExecutor runs statements against Postgres.
	PostgresExecutor interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	}
	// StreamClient appends entries to a Redis stream.
	StreamClient interface {
		XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	}
	// Metrics records export outcomes per output.
	Metrics interface {
		ObserveExport(output string, err error, items int, started time.Time)
	}
)

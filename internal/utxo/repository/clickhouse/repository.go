// Package clickhouse persists exported items into ClickHouse tables deduplicated by item id.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
)

type Repository struct {
	conn    Conn
	network model.Network
	metrics Metrics
}

func NewRepository(dsn string, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{conn: conn}, network: network, metrics: metrics}, nil
}

// Ping checks the connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

// Close releases the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

type driverConn struct {
	conn clickhouse.Conn
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (c driverConn) Ping(ctx context.Context) error { return c.conn.Ping(ctx) }

func (c driverConn) Close() error { return c.conn.Close() }

// insert prepares query, appends one row per item and sends the batch. rowOf must return the
// column values in query order.
func (r *Repository) insert(ctx context.Context, operation, query string, items []model.Item, rowOf func(model.Item) ([]any, error)) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	if len(items) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare %s batch: %w", operation, err)
	}

	for _, item := range items {
		var row []any
		if row, err = rowOf(item); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("%s: %w", operation, err)
		}
		if err = batch.Append(row...); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("%s: append row: %w", operation, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("%s: send: %w", operation, err)
	}
	return nil
}

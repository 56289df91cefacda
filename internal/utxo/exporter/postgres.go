package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createItemsTable = `
CREATE TABLE IF NOT EXISTS utxo_items (
	id BIGSERIAL PRIMARY KEY,
	item_id TEXT UNIQUE,
	item_type TEXT NOT NULL,
	network TEXT NOT NULL,
	block_number BIGINT NOT NULL,
	data JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	insertItemsPrefix = `INSERT INTO utxo_items (item_id, item_type, network, block_number, data) VALUES `
	insertItemsSuffix = ` ON CONFLICT (item_id) DO NOTHING`

	itemColumns = 5
	// Postgres caps a statement at 65535 bind parameters.
	defaultPostgresRowsPerStatement = 65535 / itemColumns
)

// PostgresExporter stores items as JSONB rows. Rows with an item id are inserted at most once, so
// re-exporting a range after a crash is harmless. Items without an id are always inserted.
type PostgresExporter struct {
	exec         PostgresExecutor
	network      model.Network
	rowsPerStmt  int
	closeBackend func()
}

// NewPostgresExporter connects a pool to dsn.
func NewPostgresExporter(ctx context.Context, dsn string, network model.Network) (*PostgresExporter, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	e := newPostgresExporter(pool, network)
	e.closeBackend = pool.Close
	return e, nil
}

func newPostgresExporter(exec PostgresExecutor, network model.Network) *PostgresExporter {
	return &PostgresExporter{exec: exec, network: network, rowsPerStmt: defaultPostgresRowsPerStatement}
}

// Open creates the items table if needed.
func (e *PostgresExporter) Open(ctx context.Context) error {
	if _, err := e.exec.Exec(ctx, createItemsTable); err != nil {
		return fmt.Errorf("create utxo_items table: %w", err)
	}
	return nil
}

// ExportItems inserts items in multi-row statements.
func (e *PostgresExporter) ExportItems(ctx context.Context, items []model.Item) error {
	for start := 0; start < len(items); start += e.rowsPerStmt {
		end := start + e.rowsPerStmt
		if end > len(items) {
			end = len(items)
		}
		sql, args, err := e.insertStatement(items[start:end])
		if err != nil {
			return err
		}
		if _, err := e.exec.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert items [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}

func (e *PostgresExporter) insertStatement(items []model.Item) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(insertItemsPrefix)
	args := make([]any, 0, len(items)*itemColumns)
	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return "", nil, fmt.Errorf("encode %s item %q: %w", item.Type, item.ItemID, err)
		}
		var itemID any
		if item.ItemID != "" {
			itemID = item.ItemID
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		n := len(args)
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d)", n+1, n+2, n+3, n+4, n+5)
		args = append(args, itemID, string(item.Type), string(e.network), int64(item.BlockNumber()), string(data))
	}
	sb.WriteString(insertItemsSuffix)
	return sb.String(), args, nil
}

// Close closes the pool.
func (e *PostgresExporter) Close(context.Context) error {
	if e.closeBackend != nil {
		e.closeBackend()
	}
	return nil
}

package exporter

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
)

// ClickHouseExporter routes items to the ClickHouse table of their type.
type ClickHouseExporter struct {
	repo ClickHouseRepository
}

// NewClickHouseExporter wraps repo.
func NewClickHouseExporter(repo ClickHouseRepository) *ClickHouseExporter {
	return &ClickHouseExporter{repo: repo}
}

// Open checks the connection.
func (e *ClickHouseExporter) Open(ctx context.Context) error {
	if err := e.repo.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

// ExportItems inserts blocks, then transactions, then traces.
func (e *ClickHouseExporter) ExportItems(ctx context.Context, items []model.Item) error {
	byType := make(map[model.ItemType][]model.Item, len(model.AllItemTypes))
	for _, item := range items {
		byType[item.Type] = append(byType[item.Type], item)
	}
	for t := range byType {
		if !model.ContainsItemType(model.AllItemTypes, t) {
			return fmt.Errorf("clickhouse: unsupported item type %q", t)
		}
	}

	inserts := []struct {
		t      model.ItemType
		insert func(context.Context, []model.Item) error
	}{
		{model.ItemTypeBlock, e.repo.InsertBlocks},
		{model.ItemTypeTransaction, e.repo.InsertTransactions},
		{model.ItemTypeTrace, e.repo.InsertTraces},
	}
	for _, ins := range inserts {
		batch := byType[ins.t]
		if len(batch) == 0 {
			continue
		}
		if err := ins.insert(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the repository.
func (e *ClickHouseExporter) Close(context.Context) error {
	return e.repo.Close()
}

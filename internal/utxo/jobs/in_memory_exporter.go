package jobs

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
)

// InMemoryExporter stages items between jobs. It is safe for concurrent use by executor workers.
type InMemoryExporter struct {
	mu    sync.Mutex
	items map[model.ItemType][]model.Item
}

// NewInMemoryExporter returns an empty staging exporter.
func NewInMemoryExporter() *InMemoryExporter {
	return &InMemoryExporter{items: make(map[model.ItemType][]model.Item)}
}

// Open is a no-op; staged items survive open/close cycles until read.
func (e *InMemoryExporter) Open(context.Context) error { return nil }

// Close is a no-op.
func (e *InMemoryExporter) Close(context.Context) error { return nil }

// ExportItems stages items by type.
func (e *InMemoryExporter) ExportItems(_ context.Context, items []model.Item) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, item := range items {
		e.items[item.Type] = append(e.items[item.Type], item)
	}
	return nil
}

// Items returns a sorted copy of the staged items of type t.
func (e *InMemoryExporter) Items(t model.ItemType) []model.Item {
	e.mu.Lock()
	items := make([]model.Item, len(e.items[t]))
	copy(items, e.items[t])
	e.mu.Unlock()

	model.SortItems(items)
	return items
}

// Transactions returns the staged transactions in block and index order.
func (e *InMemoryExporter) Transactions() []model.Transaction {
	items := e.Items(model.ItemTypeTransaction)
	txs := make([]model.Transaction, 0, len(items))
	for _, item := range items {
		txs = append(txs, *item.Transaction)
	}
	return txs
}

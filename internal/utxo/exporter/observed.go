package exporter

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
)

// ObservedExporter records metrics for an output.
type ObservedExporter struct {
	name    string
	next    ItemExporter
	metrics Metrics
}

// NewObservedExporter wraps next, labelling its metrics with name.
func NewObservedExporter(name string, next ItemExporter, metrics Metrics) *ObservedExporter {
	return &ObservedExporter{name: name, next: next, metrics: metrics}
}

func (o *ObservedExporter) Open(ctx context.Context) error {
	return o.next.Open(ctx)
}

func (o *ObservedExporter) ExportItems(ctx context.Context, items []model.Item) (err error) {
	start := time.Now()
	defer func() {
		o.metrics.ObserveExport(o.name, err, len(items), start)
	}()
	return o.next.ExportItems(ctx, items)
}

func (o *ObservedExporter) Close(ctx context.Context) error {
	return o.next.Close(ctx)
}

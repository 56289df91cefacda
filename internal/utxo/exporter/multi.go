package exporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
)

// MultiExporter fans every batch out to several outputs in order.
type MultiExporter struct {
	exporters []ItemExporter
	opened    int
}

// NewMultiExporter combines exporters.
func NewMultiExporter(exporters ...ItemExporter) *MultiExporter {
	return &MultiExporter{exporters: exporters}
}

// Open opens every output. If one fails, the ones already opened are closed again.
func (m *MultiExporter) Open(ctx context.Context) error {
	for i, e := range m.exporters {
		if err := e.Open(ctx); err != nil {
			m.opened = i
			return errors.Join(fmt.Errorf("open output %d: %w", i, err), m.Close(ctx))
		}
	}
	m.opened = len(m.exporters)
	return nil
}

// ExportItems hands items to each output and stops at the first failure.
func (m *MultiExporter) ExportItems(ctx context.Context, items []model.Item) error {
	for i, e := range m.exporters {
		if err := e.ExportItems(ctx, items); err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
	}
	return nil
}

// Close closes every opened output and joins the errors.
func (m *MultiExporter) Close(ctx context.Context) error {
	var errs []error
	for i := 0; i < m.opened; i++ {
		if err := m.exporters[i].Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close output %d: %w", i, err))
		}
	}
	m.opened = 0
	return errors.Join(errs...)
}

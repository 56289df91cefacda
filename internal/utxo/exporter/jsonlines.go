package exporter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
)

// JSONLinesExporter writes one JSON object per item, either to a stream such as stdout or to a file.
type JSONLinesExporter struct {
	mu   sync.Mutex
	path string
	w    io.Writer
	file *os.File
	buf  *bufio.Writer
}

// NewConsoleExporter writes items to w, which is never closed by the exporter.
func NewConsoleExporter(w io.Writer) *JSONLinesExporter {
	return &JSONLinesExporter{w: w}
}

// NewFileExporter appends items to the file at path, creating it on Open.
func NewFileExporter(path string) *JSONLinesExporter {
	return &JSONLinesExporter{path: path}
}

// Open opens the target file, if any.
func (e *JSONLinesExporter) Open(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.path != "" {
		f, err := os.OpenFile(e.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open %s: %w", e.path, err)
		}
		e.file = f
		e.w = f
	}
	if e.w == nil {
		return errors.New("json lines exporter has no output")
	}
	e.buf = bufio.NewWriter(e.w)
	return nil
}

// ExportItems writes the items and flushes. File output is synced before returning.
func (e *JSONLinesExporter) ExportItems(_ context.Context, items []model.Item) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.buf == nil {
		return errors.New("json lines exporter is not open")
	}
	for _, item := range items {
		line, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s item %q: %w", item.Type, item.ItemID, err)
		}
		if _, err := e.buf.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("write item: %w", err)
		}
	}
	if err := e.buf.Flush(); err != nil {
		return fmt.Errorf("flush items: %w", err)
	}
	if e.file != nil {
		if err := e.file.Sync(); err != nil {
			return fmt.Errorf("sync %s: %w", e.path, err)
		}
	}
	return nil
}

// Close flushes pending output and closes the file, if any.
func (e *JSONLinesExporter) Close(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	if e.buf != nil {
		err = e.buf.Flush()
		e.buf = nil
	}
	if e.file != nil {
		err = errors.Join(err, e.file.Close())
		e.file = nil
		e.w = nil
	}
	return err
}

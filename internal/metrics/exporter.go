package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exporterItemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "exporter",
		Name:      "items_total",
		Help:      "Count of items handed to an output.",
	}, []string{"output", "status"})

	exporterDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "exporter",
		Name:      "export_duration_seconds",
		Help:      "Duration of writing an item batch to an output.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"output", "status"})
)

// Exporter tracks metrics for item outputs.
type Exporter struct{}

// NewExporter constructs an Exporter collector.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ObserveExport records one ExportItems call against the named output.
func (m Exporter) ObserveExport(output string, err error, items int, started time.Time) {
	status := statusOf(err)
	exporterItemsTotal.WithLabelValues(output, status).Add(float64(items))
	exporterDuration.WithLabelValues(output, status).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamerSyncRangeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "streamer",
		Name:      "sync_range_total",
		Help:      "Count of block ranges exported.",
	}, []string{"network", "status"})

	streamerSyncRangeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "streamer",
		Name:      "sync_range_duration_seconds",
		Help:      "Duration of exporting a block range.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"network", "status"})

	streamerSyncRangeSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "streamer",
		Name:      "sync_range_blocks",
		Help:      "Number of blocks per exported range.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	streamerCheckpoint = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "streamer",
		Name:      "last_synced_block",
		Help:      "Last block persisted to the checkpoint.",
	}, []string{"network"})

	streamerTip = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "streamer",
		Name:      "node_tip_block",
		Help:      "Latest block height reported by the node.",
	}, []string{"network"})
)

// Streamer tracks metrics for the sync loop.
type Streamer struct {
	network model.Network
}

// NewStreamer constructs a Streamer collector.
func NewStreamer(network model.Network) *Streamer {
	if network == "" {
		network = "unknown"
	}
	return &Streamer{network: network}
}

// ObserveSyncRange records the outcome, duration and size of one exported range.
func (m Streamer) ObserveSyncRange(err error, blocks uint64, started time.Time) {
	status := statusOf(err)
	streamerSyncRangeTotal.WithLabelValues(string(m.network), status).Inc()
	streamerSyncRangeDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	streamerSyncRangeSize.WithLabelValues(string(m.network)).
		Observe(float64(blocks))
}

// SetCheckpoint publishes the last synced block.
func (m Streamer) SetCheckpoint(block uint64) {
	streamerCheckpoint.WithLabelValues(string(m.network)).Set(float64(block))
}

// SetTip publishes the node tip.
func (m Streamer) SetTip(block uint64) {
	streamerTip.WithLabelValues(string(m.network)).Set(float64(block))
}

// Package metrics exposes congestion-control metrics via Prometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/fastnet/tcp-china/internal/protocol"
	"github.com/fastnet/tcp-china/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "tcpchina"

var (
	connStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connections_started_total",
			Help:      "Connections Started",
		},
		[]string{"algorithm"},
	)
	connClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connections_closed_total",
			Help:      "Connections Closed",
		},
		[]string{"algorithm"},
	)
	connDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "connection_duration_seconds",
			Help:      "Duration of a Connection",
			Buckets:   prometheus.ExponentialBuckets(1.0/16, 2, 25), // up to 24 days
		},
		[]string{"algorithm"},
	)
	lostPackets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "lost_packets_total",
			Help:      "Lost Packets",
		},
		[]string{"algorithm"},
	)
	congestionStateTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "congestion_state_transitions_total",
			Help:      "Congestion State Transitions",
		},
		[]string{"algorithm", "state"},
	)
	ssthreshUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "ssthresh_updates_total",
			Help:      "Slow Start Threshold Recomputations",
		},
		[]string{"algorithm"},
	)
	congestionWindowOnLoss = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "congestion_window_on_loss_segments",
			Help:      "Congestion Window when a loss was reported",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 24),
		},
		[]string{"algorithm"},
	)
)

// DefaultConnectionTracer returns a callback that creates a metrics ConnectionTracer.
// It should be reused across connections.
func DefaultConnectionTracer() *logging.ConnectionTracer {
	return NewConnectionTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewConnectionTracerWithRegisterer creates a new connection tracer using a
// given Prometheus registerer.
func NewConnectionTracerWithRegisterer(registerer prometheus.Registerer) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		connStarted,
		connClosed,
		connDuration,
		lostPackets,
		congestionStateTransitions,
		ssthreshUpdates,
		congestionWindowOnLoss,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	algorithm := protocol.CHINA.String()

	var (
		startTime time.Time
		lastCwnd  logging.SegmentCount
	)
	return &logging.ConnectionTracer{
		StartedConnection: func() {
			tags := getStringSlice()
			defer putStringSlice(tags)

			startTime = time.Now()

			*tags = append(*tags, algorithm)
			connStarted.WithLabelValues(*tags...).Inc()
		},
		ClosedConnection: func(error) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, algorithm)
			connClosed.WithLabelValues(*tags...).Inc()
			if !startTime.IsZero() {
				connDuration.WithLabelValues(*tags...).Observe(time.Since(startTime).Seconds())
			}
		},
		UpdatedMetrics: func(_ *logging.RTTStats, cwnd, _, _ logging.SegmentCount) {
			lastCwnd = cwnd
		},
		LostPacket: func(logging.PacketNumber) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, algorithm)
			lostPackets.WithLabelValues(*tags...).Inc()
			if lastCwnd > 0 {
				congestionWindowOnLoss.WithLabelValues(*tags...).Observe(float64(lastCwnd))
			}
		},
		UpdatedCongestionState: func(state logging.CongestionState) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, algorithm, state.String())
			congestionStateTransitions.WithLabelValues(*tags...).Inc()
		},
		UpdatedSlowStartThreshold: func(logging.SegmentCount) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, algorithm)
			ssthreshUpdates.WithLabelValues(*tags...).Inc()
		},
	}
}

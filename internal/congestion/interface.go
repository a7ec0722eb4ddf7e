package congestion

import (
	"time"

	"github.com/fastnet/tcp-china/internal/protocol"
)

// A SendAlgorithm performs congestion control. The embedding transport stack
// invokes it at the connection lifecycle points it maps to:
// Initialize when the connection adopts the algorithm, RecordRTTSample when
// an ACK yields a fresh RTT measurement, OnAck on every ACK that advances
// the send window, and OnCongestionEvent when a loss or explicit congestion
// indication requires a new slow start threshold.
type SendAlgorithm interface {
	// Initialize prepares the per-connection state. It must run before any
	// other operation touches the connection's counters: it narrows the
	// congestion window clamp so the multiplicative-decrease arithmetic
	// cannot overflow.
	Initialize()
	// RecordRTTSample consumes a fresh RTT measurement. It only updates the
	// RTT statistics.
	RecordRTTSample(ackedSegments protocol.SegmentCount, rtt time.Duration)
	// OnAck grows the congestion window. segmentsInFlight is the number of
	// unacknowledged segments prior to this ACK; the window only grows if
	// the connection is actually limited by it.
	OnAck(ack protocol.PacketNumber, ackedSegments, segmentsInFlight protocol.SegmentCount)
	// OnCongestionEvent returns the new slow start threshold following a
	// loss or congestion indication. It never mutates the congestion window
	// itself.
	OnCongestionEvent() protocol.SegmentCount

	SetCongestionWindow(protocol.SegmentCount)
	SetSlowStartThreshold(protocol.SegmentCount)
}

// A SendAlgorithmWithDebugInfos is a SendAlgorithm that exposes some of its
// internal state, used for tracing and testing.
type SendAlgorithmWithDebugInfos interface {
	SendAlgorithm

	InSlowStart() bool
	GetCongestionWindow() protocol.SegmentCount
	GetSlowStartThreshold() protocol.SegmentCount
}

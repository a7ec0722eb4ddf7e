package protocol

import "math"

// A PacketNumber identifies a packet, as reported by the transport stack in
// ACK processing. The congestion controller itself only uses it for tracing.
type PacketNumber int64

// InvalidPacketNumber is a packet number that is never sent.
const InvalidPacketNumber PacketNumber = -1

// A SegmentCount counts TCP segments. The congestion window, the slow start
// threshold and the fractional-growth accumulator are all kept in segments.
type SegmentCount uint32

// InitialCongestionWindow is the initial congestion window in segments, per
// RFC 6928.
const InitialCongestionWindow SegmentCount = 10

// MinCongestionWindow is the smallest slow start threshold the controller
// ever reports. The embedding stack relies on this floor.
const MinCongestionWindow SegmentCount = 2

// InitialSlowStartThreshold is the slow start threshold before any
// congestion has been observed.
const InitialSlowStartThreshold SegmentCount = math.MaxUint32

// MaxCongestionWindowClamp is the largest congestion window clamp the
// controller accepts. The multiplicative-decrease arithmetic scales the
// window by a factor of up to 128 (fixed-point, scaled by 256) in uint32
// space, so the clamp is narrowed to this value at initialization.
const MaxCongestionWindowClamp SegmentCount = math.MaxUint32 / 128

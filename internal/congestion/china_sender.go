package congestion

// Hybrid slow start / HSTCP fast-increase congestion control, derived from
// the congestion detection/avoidance scheme described in
//   King R., Baraniuk, R., and Riedi, R.
//   "TCP-Africa: An Adaptive and Fair Rapid Increase Rule for Scalable TCP"
//   INFOCOM 2005, pp 1838-1848.
// Unlike TCP-Africa, this variant keeps using fast mode all the time,
// regardless of fairness.

import (
	"time"

	"github.com/fastnet/tcp-china/internal/protocol"
	"github.com/fastnet/tcp-china/internal/utils"
	"github.com/fastnet/tcp-china/logging"
)

// maxBurstSegments is the number of segments the sender may be short of a
// full window and still be considered window-limited.
const maxBurstSegments protocol.SegmentCount = 3

type chinaSender struct {
	rttStats *utils.RTTStats

	// Congestion window, in segments.
	congestionWindow protocol.SegmentCount

	// Maximum permitted congestion window, in segments. Narrowed at
	// initialization so the multiplicative-decrease arithmetic cannot
	// overflow.
	congestionWindowClamp protocol.SegmentCount

	// Fractional-growth accumulator for additive increase at less than one
	// segment per ACK.
	congestionWindowCount protocol.SegmentCount

	// Slow start threshold, in segments.
	slowStartThreshold protocol.SegmentCount

	// Current position in the AIMD table. Maintained during fast increase
	// such that
	//     hstcpAIMDVals[aimdIndex-1].cwnd < congestionWindow <=
	//     hstcpAIMDVals[aimdIndex].cwnd
	// with the lower bound vacuous at index 0, clamped to the table.
	aimdIndex int

	tracer    *logging.ConnectionTracer
	lastState logging.CongestionState
}

var (
	_ SendAlgorithm               = &chinaSender{}
	_ SendAlgorithmWithDebugInfos = &chinaSender{}
)

// NewChinaSender makes a new china sender. The caller must invoke Initialize
// before delivering any other event.
func NewChinaSender(
	rttStats *utils.RTTStats,
	initialCongestionWindow protocol.SegmentCount,
	tracer *logging.ConnectionTracer,
) SendAlgorithmWithDebugInfos {
	return &chinaSender{
		rttStats:              rttStats,
		congestionWindow:      initialCongestionWindow,
		congestionWindowClamp: protocol.MaxCongestionWindowClamp,
		slowStartThreshold:    protocol.InitialSlowStartThreshold,
		tracer:                tracer,
		lastState:             logging.CongestionStateSlowStart,
	}
}

// Initialize resets the per-connection state: the AIMD index, the RTT
// statistics, and the congestion window clamp. The clamp narrowing is a
// correctness requirement: without it, cwnd * md could exceed uint32 range
// in OnCongestionEvent.
func (c *chinaSender) Initialize() {
	c.aimdIndex = 0
	c.congestionWindowClamp = utils.Min(c.congestionWindowClamp, protocol.MaxCongestionWindowClamp)
	c.rttStats.Reset()
}

// RecordRTTSample feeds a fresh RTT measurement to the RTT statistics. The
// number of newly acked segments is reported by the stack along with the
// sample, but does not influence the smoothing.
func (c *chinaSender) RecordRTTSample(_ protocol.SegmentCount, rtt time.Duration) {
	c.rttStats.UpdateRTT(rtt)
}

func (c *chinaSender) InSlowStart() bool {
	return c.congestionWindow <= c.slowStartThreshold
}

func (c *chinaSender) GetCongestionWindow() protocol.SegmentCount {
	return c.congestionWindow
}

func (c *chinaSender) GetSlowStartThreshold() protocol.SegmentCount {
	return c.slowStartThreshold
}

func (c *chinaSender) SetCongestionWindow(cwnd protocol.SegmentCount) {
	c.congestionWindow = cwnd
}

func (c *chinaSender) SetSlowStartThreshold(ssthresh protocol.SegmentCount) {
	c.slowStartThreshold = ssthresh
}

// OnAck adjusts the congestion window for newly acked segments. Window
// growth must only reflect actual demonstrated capacity, so nothing happens
// unless the connection is limited by the congestion window.
func (c *chinaSender) OnAck(_ protocol.PacketNumber, ackedSegments, segmentsInFlight protocol.SegmentCount) {
	if !c.isCwndLimited(segmentsInFlight) {
		c.maybeTraceStateChange(logging.CongestionStateApplicationLimited)
		return
	}
	if ackedSegments == 0 {
		return
	}
	if c.InSlowStart() {
		c.maybeTraceStateChange(logging.CongestionStateSlowStart)
		c.slowStart(ackedSegments)
		return
	}
	c.maybeTraceStateChange(logging.CongestionStateFastIncrease)
	c.fastIncrease()
}

// slowStart is standard TCP slow start: the window grows by the number of
// acked segments, and by at most one full window per round trip.
func (c *chinaSender) slowStart(ackedSegments protocol.SegmentCount) {
	inc := utils.Min(ackedSegments, c.congestionWindow)
	c.congestionWindow = utils.Min(c.congestionWindow+inc, c.congestionWindowClamp)
}

// fastIncrease grows the window by a(w)/w per ACK, where a(w) is the AIMD
// table index plus one.
func (c *chinaSender) fastIncrease() {
	// Update AIMD parameters.
	//
	// We want to guarantee that:
	//     hstcpAIMDVals[aimdIndex-1].cwnd <
	//     congestionWindow <=
	//     hstcpAIMDVals[aimdIndex].cwnd
	if c.congestionWindow > hstcpAIMDVals[c.aimdIndex].cwnd {
		for c.congestionWindow > hstcpAIMDVals[c.aimdIndex].cwnd &&
			c.aimdIndex < hstcpAIMDMax-1 {
			c.aimdIndex++
		}
	} else if c.aimdIndex > 0 && c.congestionWindow <= hstcpAIMDVals[c.aimdIndex-1].cwnd {
		for c.aimdIndex > 0 && c.congestionWindow <= hstcpAIMDVals[c.aimdIndex-1].cwnd {
			c.aimdIndex--
		}
	}

	// Do additive increase.
	if c.congestionWindow < c.congestionWindowClamp {
		c.congestionWindowCount += protocol.SegmentCount(c.aimdIndex) + 1
		if c.congestionWindowCount >= c.congestionWindow {
			c.congestionWindowCount -= c.congestionWindow
			c.congestionWindow++
		}
	}
}

// OnCongestionEvent computes the slow start threshold after a loss or
// congestion indication: the window shrinks by the multiplicative-decrease
// factor of the current AIMD table entry, and never below two segments.
//
// The AIMD index is the one maintained by OnAck, so it reflects the window
// at the time of the previous ACK, not at the moment of the signal. That
// staleness is intentional and part of the algorithm.
func (c *chinaSender) OnCongestionEvent() protocol.SegmentCount {
	md := protocol.SegmentCount(hstcpAIMDVals[c.aimdIndex].md)
	return utils.Max(
		c.congestionWindow-((c.congestionWindow*md)>>8),
		protocol.MinCongestionWindow,
	)
}

// isCwndLimited reports whether the connection is close enough to using the
// whole window for growth to reflect demonstrated capacity.
func (c *chinaSender) isCwndLimited(segmentsInFlight protocol.SegmentCount) bool {
	if segmentsInFlight >= c.congestionWindow {
		return true
	}
	availableSegments := c.congestionWindow - segmentsInFlight
	slowStartLimited := c.InSlowStart() && segmentsInFlight > c.congestionWindow/2
	return slowStartLimited || availableSegments <= maxBurstSegments
}

func (c *chinaSender) maybeTraceStateChange(state logging.CongestionState) {
	if c.tracer == nil || c.tracer.UpdatedCongestionState == nil || state == c.lastState {
		return
	}
	c.tracer.UpdatedCongestionState(state)
	c.lastState = state
}

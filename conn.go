package tcpchina

import (
	"time"

	"github.com/fastnet/tcp-china/internal/congestion"
	"github.com/fastnet/tcp-china/internal/protocol"
	"github.com/fastnet/tcp-china/internal/utils"
	"github.com/fastnet/tcp-china/logging"
)

// A Conn tracks the congestion state of a single connection.
// It owns the congestion window, the slow start threshold and the
// number of segments in flight, and feeds ACK and loss signals to the
// configured congestion controller.
//
// A Conn is not safe for concurrent use.
type Conn struct {
	config *Config

	rttStats *utils.RTTStats
	sender   congestion.SendAlgorithmWithDebugInfos

	segmentsInFlight protocol.SegmentCount

	tracer *logging.ConnectionTracer
	logger utils.Logger
}

// NewConn creates a new connection congestion state.
// The config may be nil, in which case defaults are used.
func NewConn(config *Config) *Conn {
	config = populateConfig(config)
	rttStats := utils.NewRTTStats()
	c := &Conn{
		config:   config,
		rttStats: rttStats,
		sender: congestion.GetCongestionControlFromConfig(
			rttStats,
			config.Algorithm,
			config.InitialCongestionWindow,
			config.Tracer,
		),
		tracer: config.Tracer,
		logger: config.Logger,
	}
	if c.tracer != nil && c.tracer.StartedConnection != nil {
		c.tracer.StartedConnection()
	}
	c.logger.Infof("Connection started, using the %s congestion controller.", config.Algorithm)
	return c
}

// OnPacketSent registers segments newly put in flight.
func (c *Conn) OnPacketSent(segments protocol.SegmentCount) {
	c.segmentsInFlight += segments
	c.traceMetrics()
}

// OnAckReceived processes an incoming acknowledgment.
// ackedSegments is the number of segments newly acknowledged by this
// ACK, and rtt the RTT sample it carried. A zero rtt means the ACK
// carried no usable sample.
func (c *Conn) OnAckReceived(ack protocol.PacketNumber, ackedSegments protocol.SegmentCount, rtt time.Duration) {
	if rtt > 0 {
		c.sender.RecordRTTSample(ackedSegments, rtt)
	}
	priorInFlight := c.segmentsInFlight
	c.segmentsInFlight -= utils.Min(ackedSegments, c.segmentsInFlight)
	c.sender.OnAck(ack, ackedSegments, priorInFlight)
	c.traceMetrics()
}

// OnPacketLost reacts to the loss of the given packet.
// The congestion window and the slow start threshold are both reduced
// to the controller's new threshold.
func (c *Conn) OnPacketLost(pn protocol.PacketNumber) {
	ssthresh := c.sender.OnCongestionEvent()
	c.sender.SetSlowStartThreshold(ssthresh)
	c.sender.SetCongestionWindow(ssthresh)
	if c.segmentsInFlight > 0 {
		c.segmentsInFlight--
	}
	c.logger.Debugf("Lost packet %d, reducing the congestion window to %d segments.", pn, ssthresh)
	if c.tracer != nil {
		if c.tracer.LostPacket != nil {
			c.tracer.LostPacket(pn)
		}
		if c.tracer.UpdatedSlowStartThreshold != nil {
			c.tracer.UpdatedSlowStartThreshold(ssthresh)
		}
	}
	c.traceMetrics()
}

// CanSend says if the congestion window allows putting more segments
// in flight.
func (c *Conn) CanSend() bool {
	return c.segmentsInFlight < c.sender.GetCongestionWindow()
}

// CongestionWindow returns the current congestion window in segments.
func (c *Conn) CongestionWindow() protocol.SegmentCount {
	return c.sender.GetCongestionWindow()
}

// SlowStartThreshold returns the current slow start threshold in segments.
func (c *Conn) SlowStartThreshold() protocol.SegmentCount {
	return c.sender.GetSlowStartThreshold()
}

// InSlowStart says if the controller is in the slow start phase.
func (c *Conn) InSlowStart() bool {
	return c.sender.InSlowStart()
}

// SegmentsInFlight returns the number of segments currently in flight.
func (c *Conn) SegmentsInFlight() protocol.SegmentCount {
	return c.segmentsInFlight
}

// RTTStats gives access to the connection's RTT measurements.
func (c *Conn) RTTStats() *utils.RTTStats {
	return c.rttStats
}

// Close ends the connection and flushes the tracer.
func (c *Conn) Close(err error) {
	if c.tracer != nil {
		if c.tracer.ClosedConnection != nil {
			c.tracer.ClosedConnection(err)
		}
		if c.tracer.Close != nil {
			c.tracer.Close()
		}
	}
}

func (c *Conn) traceMetrics() {
	if c.tracer == nil || c.tracer.UpdatedMetrics == nil {
		return
	}
	c.tracer.UpdatedMetrics(
		c.rttStats,
		c.sender.GetCongestionWindow(),
		c.sender.GetSlowStartThreshold(),
		c.segmentsInFlight,
	)
}

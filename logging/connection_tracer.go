package logging

// A ConnectionTracer records events of a single connection.
type ConnectionTracer struct {
	StartedConnection         func()
	ClosedConnection          func(error)
	UpdatedMetrics            func(rttStats *RTTStats, cwnd, ssthresh, segmentsInFlight SegmentCount)
	LostPacket                func(PacketNumber)
	UpdatedCongestionState    func(CongestionState)
	UpdatedSlowStartThreshold func(ssthresh SegmentCount)
	Debug                     func(name, msg string)
	Close                     func()
}

// NewMultiplexedConnectionTracer creates a new connection tracer that
// multiplexes events to multiple tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &ConnectionTracer{
		StartedConnection: func() {
			for _, t := range tracers {
				if t.StartedConnection != nil {
					t.StartedConnection()
				}
			}
		},
		ClosedConnection: func(e error) {
			for _, t := range tracers {
				if t.ClosedConnection != nil {
					t.ClosedConnection(e)
				}
			}
		},
		UpdatedMetrics: func(rttStats *RTTStats, cwnd, ssthresh, segmentsInFlight SegmentCount) {
			for _, t := range tracers {
				if t.UpdatedMetrics != nil {
					t.UpdatedMetrics(rttStats, cwnd, ssthresh, segmentsInFlight)
				}
			}
		},
		LostPacket: func(pn PacketNumber) {
			for _, t := range tracers {
				if t.LostPacket != nil {
					t.LostPacket(pn)
				}
			}
		},
		UpdatedCongestionState: func(state CongestionState) {
			for _, t := range tracers {
				if t.UpdatedCongestionState != nil {
					t.UpdatedCongestionState(state)
				}
			}
		},
		UpdatedSlowStartThreshold: func(ssthresh SegmentCount) {
			for _, t := range tracers {
				if t.UpdatedSlowStartThreshold != nil {
					t.UpdatedSlowStartThreshold(ssthresh)
				}
			}
		},
		Debug: func(name, msg string) {
			for _, t := range tracers {
				if t.Debug != nil {
					t.Debug(name, msg)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}

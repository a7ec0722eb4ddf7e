package utils

import "time"

// RTTStats provides round-trip statistics for a single connection.
//
// Samples are kept as uint32 microseconds, and the average is smoothed with
// integer shift arithmetic (weight 1/8 on the new sample). The truncation
// this introduces is a property of the algorithm, so the fields are not
// time.Durations internally.
type RTTStats struct {
	minRTT    uint32 // microseconds, 0 means no sample yet
	avgRTT    uint32 // microseconds, 0 means no sample yet
	latestRTT uint32 // microseconds
}

// NewRTTStats makes a properly initialized RTTStats object
func NewRTTStats() *RTTStats {
	return &RTTStats{}
}

// MinRTT returns the smallest RTT seen since the last reset, the assumed
// propagation delay. Zero if no valid updates have occurred.
func (r *RTTStats) MinRTT() time.Duration {
	return time.Duration(r.minRTT) * time.Microsecond
}

// SmoothedRTT returns the exponentially smoothed RTT, the assumed
// propagation delay plus queueing delay. Zero if no valid updates have
// occurred.
func (r *RTTStats) SmoothedRTT() time.Duration {
	return time.Duration(r.avgRTT) * time.Microsecond
}

// LatestRTT returns the most recent RTT sample.
func (r *RTTStats) LatestRTT() time.Duration {
	return time.Duration(r.latestRTT) * time.Microsecond
}

// HasMeasurement reports whether any valid RTT sample was recorded since the
// last reset.
func (r *RTTStats) HasMeasurement() bool {
	return r.minRTT != 0
}

// UpdateRTT updates the RTT statistics based on a new sample.
func (r *RTTStats) UpdateRTT(sendDelta time.Duration) {
	rtt := uint32(sendDelta / time.Microsecond)
	// A zero RTT is never trusted.
	if rtt == 0 {
		rtt = 1
	}
	r.latestRTT = rtt

	if rtt < r.minRTT || r.minRTT == 0 {
		r.minRTT = rtt
	}

	if r.avgRTT > 0 {
		// avg RTT = 7/8 avg RTT + 1/8 new RTT, with shifts, like the
		// host stack's own RTT estimator.
		r.avgRTT += (rtt >> 3) - (r.avgRTT >> 3)
	} else {
		r.avgRTT = rtt
	}
}

// Reset forgets all samples, as if the connection were new.
func (r *RTTStats) Reset() {
	r.minRTT = 0
	r.avgRTT = 0
	r.latestRTT = 0
}

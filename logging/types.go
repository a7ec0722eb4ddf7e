// Package logging defines a logging interface for tcp-china.
// This package should not be considered stable
package logging

import (
	"github.com/fastnet/tcp-china/internal/protocol"
	"github.com/fastnet/tcp-china/internal/utils"
)

// A SegmentCount is the number of TCP segments
type SegmentCount = protocol.SegmentCount

// A PacketNumber is a packet number, as reported by the transport stack
type PacketNumber = protocol.PacketNumber

// The RTTStats provide statistics on the round-trip time
type RTTStats = utils.RTTStats

// The CongestionState is the state of the congestion controller
type CongestionState uint8

const (
	// CongestionStateSlowStart is the slow start phase of the connection,
	// active while the congestion window is at or below the slow start
	// threshold
	CongestionStateSlowStart CongestionState = iota
	// CongestionStateFastIncrease is the HSTCP-style additive increase
	// phase, entered once the congestion window exceeds the slow start
	// threshold
	CongestionStateFastIncrease
	// CongestionStateApplicationLimited means the connection is currently
	// limited by the application or the receiver, not by congestion
	CongestionStateApplicationLimited
)

func (s CongestionState) String() string {
	switch s {
	case CongestionStateSlowStart:
		return "slow_start"
	case CongestionStateFastIncrease:
		return "fast_increase"
	case CongestionStateApplicationLimited:
		return "application_limited"
	default:
		return "unknown congestion state"
	}
}

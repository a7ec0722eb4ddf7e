// Package tcpchina implements the "china" TCP congestion control
// algorithm: standard slow start, followed by an HSTCP-style fast-increase
// mode that stays active for the lifetime of the connection.
//
// The algorithmic core lives in internal/congestion and is driven through a
// per-connection Conn, which a transport stack feeds with ACK and loss
// events.
package tcpchina

import (
	"github.com/fastnet/tcp-china/internal/protocol"
)

// A SegmentCount is the number of TCP segments
type SegmentCount = protocol.SegmentCount

// A PacketNumber is a packet number, as reported by the transport stack
type PacketNumber = protocol.PacketNumber

// A CongestionControlAlgorithm identifies a congestion controller
type CongestionControlAlgorithm = protocol.CongestionControlAlgorithm

// GetCongestionType parses an algorithm name, as used in configuration.
func GetCongestionType(congestionString string) CongestionControlAlgorithm {
	return protocol.GetCongestionType(congestionString)
}

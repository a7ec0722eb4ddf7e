package protocol

import "strings"

// CongestionControlAlgorithm selects the congestion controller for a
// connection.
type CongestionControlAlgorithm uint8

const (
	// CHINA is the hybrid slow start / HSTCP fast-increase controller.
	CHINA CongestionControlAlgorithm = 1
)

// GetCongestionType parses an algorithm name, as used in configuration.
func GetCongestionType(congestionString string) CongestionControlAlgorithm {
	switch strings.ToLower(congestionString) {
	case "china":
		return CHINA
	default:
		return CHINA
	}
}

func (a CongestionControlAlgorithm) String() string {
	switch a {
	case CHINA:
		return "china"
	default:
		return "unknown"
	}
}

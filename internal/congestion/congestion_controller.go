package congestion

import (
	"github.com/fastnet/tcp-china/internal/protocol"
	"github.com/fastnet/tcp-china/internal/utils"
	"github.com/fastnet/tcp-china/logging"
)

// GetCongestionControlFromConfig constructs and initializes the congestion
// controller selected by the configuration.
func GetCongestionControlFromConfig(
	rttStats *utils.RTTStats,
	congestionConfig protocol.CongestionControlAlgorithm,
	initialCongestionWindow protocol.SegmentCount,
	tracer *logging.ConnectionTracer,
) SendAlgorithmWithDebugInfos {
	var congestionAlgorithm SendAlgorithmWithDebugInfos
	switch congestionConfig {
	case protocol.CHINA:
		congestionAlgorithm = NewChinaSender(rttStats, initialCongestionWindow, tracer)
	default:
		congestionAlgorithm = NewChinaSender(rttStats, initialCongestionWindow, tracer)
	}
	congestionAlgorithm.Initialize()
	return congestionAlgorithm
}

package tcpchina

import (
	"github.com/fastnet/tcp-china/internal/protocol"
	"github.com/fastnet/tcp-china/internal/utils"
	"github.com/fastnet/tcp-china/logging"
)

// Config contains all configuration data needed for a connection's
// congestion state.
type Config struct {
	// The congestion controller to use.
	// If not set, the china controller is used.
	Algorithm protocol.CongestionControlAlgorithm
	// InitialCongestionWindow is the congestion window a new connection
	// starts with, in segments.
	// If not set, it defaults to 10 segments (RFC 6928).
	InitialCongestionWindow protocol.SegmentCount
	// Tracer records congestion events of the connection.
	Tracer *logging.ConnectionTracer
	// Logger is used for debug output.
	// If not set, the default logger is used.
	Logger utils.Logger
}

// Clone clones the Config.
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	algorithm := config.Algorithm
	if algorithm == 0 {
		algorithm = protocol.CHINA
	}
	initialCongestionWindow := config.InitialCongestionWindow
	if initialCongestionWindow == 0 {
		initialCongestionWindow = protocol.InitialCongestionWindow
	}
	logger := config.Logger
	if logger == nil {
		logger = utils.DefaultLogger
	}
	return &Config{
		Algorithm:               algorithm,
		InitialCongestionWindow: initialCongestionWindow,
		Tracer:                  config.Tracer,
		Logger:                  logger,
	}
}

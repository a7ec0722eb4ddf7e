package qlog

import (
	"time"

	"github.com/fastnet/tcp-china/logging"

	"github.com/francoispqt/gojay"
)

var eventFields = [4]string{"relative_time", "category", "event", "data"}

type events []event

var _ gojay.MarshalerJSONArray = events{}

func (e events) IsNil() bool { return e == nil }
func (e events) MarshalJSONArray(enc *gojay.Encoder) {
	for _, ev := range e {
		enc.Array(ev)
	}
}

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONArray = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(milliseconds(e.RelativeTime))
	enc.String(e.Category().String())
	enc.String(e.Name())
	enc.Object(e.eventDetails)
}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventConnectionStarted struct {
	Algorithm string
}

var _ eventDetails = &eventConnectionStarted{}

func (e eventConnectionStarted) Category() category { return categoryTransport }
func (e eventConnectionStarted) Name() string       { return "connection_started" }
func (e eventConnectionStarted) IsNil() bool        { return false }

func (e eventConnectionStarted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("congestion_control", e.Algorithm)
}

type eventConnectionClosed struct {
	Reason string
}

var _ eventDetails = &eventConnectionClosed{}

func (e eventConnectionClosed) Category() category { return categoryTransport }
func (e eventConnectionClosed) Name() string       { return "connection_closed" }
func (e eventConnectionClosed) IsNil() bool        { return false }

func (e eventConnectionClosed) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("trigger", e.Reason)
}

type metrics struct {
	MinRTT      time.Duration
	SmoothedRTT time.Duration
	LatestRTT   time.Duration

	CongestionWindow   logging.SegmentCount
	SlowStartThreshold logging.SegmentCount
	SegmentsInFlight   logging.SegmentCount
}

type eventMetricsUpdated struct {
	Last    *metrics
	Current *metrics
}

var _ eventDetails = &eventMetricsUpdated{}

func (e eventMetricsUpdated) Category() category { return categoryRecovery }
func (e eventMetricsUpdated) Name() string       { return "metrics_updated" }
func (e eventMetricsUpdated) IsNil() bool        { return false }

// Only fields that changed since the last metrics update are encoded.
func (e eventMetricsUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	if e.Last == nil || e.Last.MinRTT != e.Current.MinRTT {
		enc.FloatKey("min_rtt", milliseconds(e.Current.MinRTT))
	}
	if e.Last == nil || e.Last.SmoothedRTT != e.Current.SmoothedRTT {
		enc.FloatKey("smoothed_rtt", milliseconds(e.Current.SmoothedRTT))
	}
	if e.Last == nil || e.Last.LatestRTT != e.Current.LatestRTT {
		enc.FloatKey("latest_rtt", milliseconds(e.Current.LatestRTT))
	}
	if e.Last == nil || e.Last.CongestionWindow != e.Current.CongestionWindow {
		enc.Uint64Key("congestion_window", uint64(e.Current.CongestionWindow))
	}
	if e.Last == nil || e.Last.SlowStartThreshold != e.Current.SlowStartThreshold {
		enc.Uint64Key("ssthresh", uint64(e.Current.SlowStartThreshold))
	}
	if e.Last == nil || e.Last.SegmentsInFlight != e.Current.SegmentsInFlight {
		enc.Uint64KeyOmitEmpty("segments_in_flight", uint64(e.Current.SegmentsInFlight))
	}
}

// An ssthresh recomputation is a metrics update that only carries the new
// threshold.
type eventUpdatedSsthresh struct {
	Value logging.SegmentCount
}

var _ eventDetails = &eventUpdatedSsthresh{}

func (e eventUpdatedSsthresh) Category() category { return categoryRecovery }
func (e eventUpdatedSsthresh) Name() string       { return "metrics_updated" }
func (e eventUpdatedSsthresh) IsNil() bool        { return false }

func (e eventUpdatedSsthresh) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("ssthresh", uint64(e.Value))
}

type eventPacketLost struct {
	PacketNumber logging.PacketNumber
}

var _ eventDetails = &eventPacketLost{}

func (e eventPacketLost) Category() category { return categoryRecovery }
func (e eventPacketLost) Name() string       { return "packet_lost" }
func (e eventPacketLost) IsNil() bool        { return false }

func (e eventPacketLost) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("packet_number", int64(e.PacketNumber))
}

type eventCongestionStateUpdated struct {
	state logging.CongestionState
}

var _ eventDetails = &eventCongestionStateUpdated{}

func (e eventCongestionStateUpdated) Category() category { return categoryRecovery }
func (e eventCongestionStateUpdated) Name() string       { return "congestion_state_updated" }
func (e eventCongestionStateUpdated) IsNil() bool        { return false }

func (e eventCongestionStateUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("new", e.state.String())
}

type eventGeneric struct {
	name string
	msg  string
}

var _ eventDetails = &eventGeneric{}

func (e eventGeneric) Category() category { return categoryTransport }
func (e eventGeneric) Name() string       { return e.name }
func (e eventGeneric) IsNil() bool        { return false }

func (e eventGeneric) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("details", e.msg)
}

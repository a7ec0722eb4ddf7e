package qlog

import (
	"time"

	"github.com/francoispqt/gojay"
)

type topLevel struct {
	traces traces
}

var _ gojay.MarshalerJSONObject = topLevel{}

func (topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_version", "draft-02")
	enc.StringKey("title", "tcp-china qlog")
	enc.ArrayKey("traces", l.traces)
}

type traces []trace

var _ gojay.MarshalerJSONArray = traces{}

func (t traces) IsNil() bool { return t == nil }
func (t traces) MarshalJSONArray(enc *gojay.Encoder) {
	for _, tr := range t {
		enc.Object(tr)
	}
}

type vantagePoint struct {
	Name string
}

var _ gojay.MarshalerJSONObject = vantagePoint{}

func (vantagePoint) IsNil() bool { return false }
func (p vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", p.Name)
	enc.StringKey("type", "sender")
}

type commonFields struct {
	GroupID       string
	ReferenceTime time.Time
}

var _ gojay.MarshalerJSONObject = commonFields{}

func (commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("group_id", f.GroupID)
	enc.FloatKey("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
	enc.StringKey("time_format", "relative")
}

type trace struct {
	VantagePoint vantagePoint
	CommonFields commonFields
	EventFields  []string
	Events       events
}

var _ gojay.MarshalerJSONObject = trace{}

func (trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", t.VantagePoint)
	enc.ObjectKey("common_fields", t.CommonFields)
	enc.AddSliceStringKey("event_fields", t.EventFields)
	enc.ArrayKey("events", t.Events)
}

// Package qlog records the congestion state of a connection in the qlog
// format (draft-02).
package qlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/fastnet/tcp-china/internal/protocol"
	"github.com/fastnet/tcp-china/logging"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 50

// NewConnectionTracer creates a new tracer that records a qlog for a
// connection. The label identifies the connection in the trace's group_id.
// Writing is asynchronous; the returned tracer's Close flushes the qlog and
// closes w.
func NewConnectionTracer(w io.WriteCloser, label string) *logging.ConnectionTracer {
	t := newConnectionTracer(w, label)
	return &logging.ConnectionTracer{
		StartedConnection:         t.StartedConnection,
		ClosedConnection:          t.ClosedConnection,
		UpdatedMetrics:            t.UpdatedMetrics,
		LostPacket:                t.LostPacket,
		UpdatedCongestionState:    t.UpdatedCongestionState,
		UpdatedSlowStartThreshold: t.UpdatedSlowStartThreshold,
		Debug:                     t.Debug,
		Close:                     t.Close,
	}
}

type connectionTracer struct {
	mutex sync.Mutex

	w             io.WriteCloser
	label         string
	referenceTime time.Time

	suffix     []byte
	events     chan event
	encodeErr  error
	runStopped chan struct{}

	lastMetrics *metrics
}

func newConnectionTracer(w io.WriteCloser, label string) *connectionTracer {
	t := &connectionTracer{
		w:             w,
		label:         label,
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
		referenceTime: time.Now(),
	}
	go t.run()
	return t
}

func (t *connectionTracer) run() {
	defer close(t.runStopped)
	buf := &bytes.Buffer{}
	enc := gojay.NewEncoder(buf)
	tl := &topLevel{
		traces: traces{
			{
				VantagePoint: vantagePoint{},
				CommonFields: commonFields{
					GroupID:       t.label,
					ReferenceTime: t.referenceTime,
				},
				EventFields: eventFields[:],
			},
		}}
	if err := enc.Encode(tl); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	data := buf.Bytes()
	// The trace ends with an empty events array. Everything after its
	// opening bracket is held back until export, and the events are
	// streamed in between.
	t.suffix = data[buf.Len()-4:]
	if _, err := t.w.Write(data[:buf.Len()-4]); err != nil {
		t.encodeErr = err
	}
	enc = gojay.NewEncoder(t.w)
	isFirst := true
	for ev := range t.events {
		if t.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if !isFirst {
			t.w.Write([]byte(","))
		}
		if err := enc.Encode(ev); err != nil {
			t.encodeErr = err
		}
		isFirst = false
	}
}

func (t *connectionTracer) Close() {
	if err := t.export(); err != nil {
		log.Printf("exporting qlog failed: %s\n", err)
	}
}

// export writes a qlog.
func (t *connectionTracer) export() error {
	close(t.events)
	<-t.runStopped
	if t.encodeErr != nil {
		return t.encodeErr
	}
	if _, err := t.w.Write(t.suffix); err != nil {
		return err
	}
	return t.w.Close()
}

func (t *connectionTracer) recordEvent(eventTime time.Time, details eventDetails) {
	t.events <- event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}
}

func (t *connectionTracer) StartedConnection() {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventConnectionStarted{Algorithm: protocol.CHINA.String()})
	t.mutex.Unlock()
}

func (t *connectionTracer) ClosedConnection(e error) {
	t.mutex.Lock()
	ev := &eventConnectionClosed{}
	if e != nil {
		ev.Reason = e.Error()
	}
	t.recordEvent(time.Now(), ev)
	t.mutex.Unlock()
}

func (t *connectionTracer) UpdatedMetrics(rttStats *logging.RTTStats, cwnd, ssthresh, segmentsInFlight logging.SegmentCount) {
	m := &metrics{
		MinRTT:             rttStats.MinRTT(),
		SmoothedRTT:        rttStats.SmoothedRTT(),
		LatestRTT:          rttStats.LatestRTT(),
		CongestionWindow:   cwnd,
		SlowStartThreshold: ssthresh,
		SegmentsInFlight:   segmentsInFlight,
	}
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventMetricsUpdated{
		Last:    t.lastMetrics,
		Current: m,
	})
	t.lastMetrics = m
	t.mutex.Unlock()
}

func (t *connectionTracer) LostPacket(pn logging.PacketNumber) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventPacketLost{PacketNumber: pn})
	t.mutex.Unlock()
}

func (t *connectionTracer) UpdatedCongestionState(state logging.CongestionState) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventCongestionStateUpdated{state: state})
	t.mutex.Unlock()
}

func (t *connectionTracer) UpdatedSlowStartThreshold(ssthresh logging.SegmentCount) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventUpdatedSsthresh{Value: ssthresh})
	t.mutex.Unlock()
}

func (t *connectionTracer) Debug(name, msg string) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventGeneric{name: name, msg: msg})
	t.mutex.Unlock()
}

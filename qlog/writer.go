package qlog

import (
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 256

const recordSeparator = 0x1e

type writer struct {
	w io.WriteCloser

	referenceTime time.Time

	mutex      sync.RWMutex // protects closed, so that no event is recorded after the events channel was closed
	closed     bool
	events     chan event
	dropped    atomic.Int64
	encodeErr  error
	runStopped chan struct{}
}

func newWriter(w io.WriteCloser, referenceTime time.Time) *writer {
	return &writer{
		w:             w,
		referenceTime: referenceTime,
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
	}
}

// RecordEvent never blocks, since it is called from the triage workers.
// If the writer can't keep up, the event is dropped.
func (w *writer) RecordEvent(eventTime time.Time, details eventDetails) {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	if w.closed {
		return
	}
	select {
	case w.events <- event{
		RelativeTime: eventTime.Sub(w.referenceTime),
		eventDetails: details,
	}:
	default:
		w.dropped.Add(1)
	}
}

func (w *writer) Run(header gojay.MarshalerJSONObject) {
	defer close(w.runStopped)
	enc := gojay.NewEncoder(w.w)
	if _, err := w.w.Write([]byte{recordSeparator}); err != nil {
		w.encodeErr = err
	}
	if w.encodeErr == nil {
		if err := enc.Encode(header); err != nil {
			w.encodeErr = err
		}
	}
	for ev := range w.events {
		if w.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if _, err := w.w.Write([]byte{'\n', recordSeparator}); err != nil {
			w.encodeErr = err
			continue
		}
		if err := enc.Encode(ev); err != nil {
			w.encodeErr = err
			continue
		}
	}
}

func (w *writer) Close() {
	if err := w.close(); err != nil {
		log.Printf("exporting qlog failed: %s\n", err)
	}
}

func (w *writer) close() error {
	w.mutex.Lock()
	if w.closed {
		w.mutex.Unlock()
		return nil
	}
	w.closed = true
	close(w.events)
	w.mutex.Unlock()

	<-w.runStopped
	if n := w.dropped.Load(); n > 0 {
		log.Printf("qlog: dropped %d events\n", n)
	}
	if w.encodeErr != nil {
		return fmt.Errorf("encoding failed: %w", w.encodeErr)
	}
	if _, err := w.w.Write([]byte{'\n'}); err != nil {
		return err
	}
	return w.w.Close()
}

// Package qlog writes triage events as a JSON-SEQ stream, in the style of qlog.
package qlog

import (
	"io"
	"net"
	"runtime/debug"
	"time"

	"github.com/quic-go/ingress/logging"

	"github.com/francoispqt/gojay"
)

// ingressVersion is written to the trace header as code_version.
// Release builds set it with
// -ldflags="-X github.com/quic-go/ingress/qlog.ingressVersion=v1.2.3"
// and otherwise it is taken from the main module's build info.
var ingressVersion = "(devel)"

func init() {
	if ingressVersion != "(devel)" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		ingressVersion = versionFromBuildInfo(info)
	}
}

func versionFromBuildInfo(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" {
		return v
	}
	return "(devel)"
}

const (
	qlogVersion = "0.3"
	traceTitle  = "quic ingress triage"
)

type topLevel struct {
	referenceTime time.Time
}

func (topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_format", "JSON-SEQ")
	enc.StringKey("qlog_version", qlogVersion)
	enc.StringKey("title", traceTitle)
	enc.ObjectKey("configuration", configuration{})
	enc.ObjectKey("common_fields", commonFields{ReferenceTime: l.referenceTime})
}

type configuration struct{}

func (configuration) IsNil() bool { return false }
func (configuration) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("code_version", ingressVersion)
}

type commonFields struct {
	ReferenceTime time.Time
}

func (commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("vantage_point", "server")
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
	enc.StringKey("time_format", "relative")
}

// NewTracer creates a tracer that writes the triage events to w.
// w is closed when the tracer's Close callback is invoked.
func NewTracer(w io.WriteCloser) *logging.Tracer {
	now := time.Now()
	wr := newWriter(w, now)
	go wr.Run(topLevel{referenceTime: now})

	return &logging.Tracer{
		SentVersionNegotiationPacket: func(dest net.Addr, destConnID, srcConnID logging.ArbitraryLenConnectionID, versions []logging.Version) {
			wr.RecordEvent(time.Now(), eventVersionNegotiationSent{
				Remote:     dest,
				DestConnID: destConnID,
				SrcConnID:  srcConnID,
				Versions:   versions,
			})
		},
		SentRetry: func(dest net.Addr, origDestConnID, retrySrcConnID logging.ConnectionID, v logging.Version) {
			wr.RecordEvent(time.Now(), eventRetrySent{
				Remote:         dest,
				OrigDestConnID: origDestConnID,
				RetrySrcConnID: retrySrcConnID,
				Version:        v,
			})
		},
		ForwardedPacket: func(remote net.Addr, pt logging.PacketType, destConnID logging.ConnectionID, size logging.ByteCount) {
			wr.RecordEvent(time.Now(), eventPacketForwarded{
				Remote:     remote,
				PacketType: pt,
				DestConnID: destConnID,
				Size:       size,
			})
		},
		CreatedConnection: func(remote net.Addr, srcConnID, destConnID, origDestConnID logging.ConnectionID) {
			wr.RecordEvent(time.Now(), eventConnectionCreated{
				Remote:         remote,
				SrcConnID:      srcConnID,
				DestConnID:     destConnID,
				OrigDestConnID: origDestConnID,
			})
		},
		DroppedPacket: func(remote net.Addr, pt logging.PacketType, size logging.ByteCount, reason logging.PacketDropReason) {
			wr.RecordEvent(time.Now(), eventPacketDropped{
				Remote:     remote,
				PacketType: pt,
				Size:       size,
				Trigger:    reason,
			})
		},
		DispatchTimedOut: func(remote net.Addr, size logging.ByteCount) {
			wr.RecordEvent(time.Now(), eventDispatchTimedOut{Remote: remote, Size: size})
		},
		Close: wr.Close,
	}
}

//go:build !gomock && !generate

package mocklogging

import (
	"net"

	"github.com/quic-go/ingress/internal/mocks/logging/internal"
	"github.com/quic-go/ingress/logging"

	"go.uber.org/mock/gomock"
)

type MockTracer = internal.MockTracer

// NewMockTracer returns a Tracer that forwards all events to the returned MockTracer.
func NewMockTracer(ctrl *gomock.Controller) (*logging.Tracer, *MockTracer) {
	t := internal.NewMockTracer(ctrl)
	return &logging.Tracer{
		SentVersionNegotiationPacket: func(dest net.Addr, destConnID, srcConnID logging.ArbitraryLenConnectionID, versions []logging.Version) {
			t.SentVersionNegotiationPacket(dest, destConnID, srcConnID, versions)
		},
		SentRetry: func(dest net.Addr, origDestConnID, retrySrcConnID logging.ConnectionID, version logging.Version) {
			t.SentRetry(dest, origDestConnID, retrySrcConnID, version)
		},
		ForwardedPacket: func(remote net.Addr, packetType logging.PacketType, destConnID logging.ConnectionID, size logging.ByteCount) {
			t.ForwardedPacket(remote, packetType, destConnID, size)
		},
		CreatedConnection: func(remote net.Addr, srcConnID, destConnID, origDestConnID logging.ConnectionID) {
			t.CreatedConnection(remote, srcConnID, destConnID, origDestConnID)
		},
		DroppedPacket: func(remote net.Addr, packetType logging.PacketType, size logging.ByteCount, reason logging.PacketDropReason) {
			t.DroppedPacket(remote, packetType, size, reason)
		},
		DispatchTimedOut: func(remote net.Addr, size logging.ByteCount) {
			t.DispatchTimedOut(remote, size)
		},
		Close: t.Close,
	}, t
}

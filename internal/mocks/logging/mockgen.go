//go:build gomock || generate

package mocklogging

import (
	"net"

	"github.com/quic-go/ingress/logging"
)

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package internal -destination internal/tracer.go github.com/quic-go/ingress/internal/mocks/logging Tracer"
type Tracer interface {
	SentVersionNegotiationPacket(dest net.Addr, destConnID, srcConnID logging.ArbitraryLenConnectionID, versions []logging.Version)
	SentRetry(dest net.Addr, origDestConnID, retrySrcConnID logging.ConnectionID, version logging.Version)
	ForwardedPacket(remote net.Addr, packetType logging.PacketType, destConnID logging.ConnectionID, size logging.ByteCount)
	CreatedConnection(remote net.Addr, srcConnID, destConnID, origDestConnID logging.ConnectionID)
	DroppedPacket(remote net.Addr, packetType logging.PacketType, size logging.ByteCount, reason logging.PacketDropReason)
	DispatchTimedOut(remote net.Addr, size logging.ByteCount)
	Close()
}

package ingress

import (
	"github.com/quic-go/ingress/internal/protocol"
	"github.com/quic-go/ingress/internal/wire"
)

// wireCodec parses and composes packets using the wire package.
type wireCodec struct{}

var _ packetCodec = wireCodec{}

func (wireCodec) ParseHeader(data []byte) (*wire.Header, error) {
	return wire.ParseHeader(data)
}

// ComposeVersionNegotiation echoes the connection IDs of the client's packet, as required by RFC 8999.
func (wireCodec) ComposeVersionNegotiation(srcConnID, destConnID protocol.ArbitraryLenConnectionID) ([]byte, error) {
	return wire.ComposeVersionNegotiation(srcConnID, destConnID, protocol.SupportedVersions)
}

func (wireCodec) ComposeRetry(srcConnID, destConnID, newConnID ConnectionID, token []byte, v protocol.Version) ([]byte, error) {
	return wire.ComposeRetry(srcConnID, newConnID, destConnID, token, v)
}

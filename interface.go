// Package ingress implements the ingress triage stage of a QUIC server.
//
// Every datagram received from the network is handed to a Worker, which classifies it
// based on its QUIC header. Packets belonging to existing connections are forwarded to the
// ConnectionRegistry. Initial packets run through the stateless retry handshake: no
// connection state is allocated before the client has proven ownership of its address by
// echoing a Retry token.
package ingress

import (
	"net"

	"github.com/quic-go/ingress/internal/protocol"
	"github.com/quic-go/ingress/internal/wire"
	"github.com/quic-go/ingress/logging"
)

// A ConnectionID is a QUIC Connection ID, as defined in RFC 9000.
// It is not able to handle QUIC Connection IDs longer than 20 bytes,
// as they are allowed by RFC 8999.
type ConnectionID = protocol.ConnectionID

// ConnectionIDFromBytes interprets b as a Connection ID. It panics if b is
// longer than 20 bytes.
func ConnectionIDFromBytes(b []byte) ConnectionID {
	return protocol.ParseConnectionID(b)
}

// A Version is a QUIC version number.
type Version = protocol.Version

const (
	// Version1 is RFC 9000
	Version1 = protocol.Version1
	// Version2 is RFC 9369
	Version2 = protocol.Version2
)

// A Transport sends datagrams.
// The error is only used for logging, the worker never retries a send.
type Transport interface {
	Send(addr net.Addr, b []byte) error
}

// A ConnectionRegistry owns the per-connection state.
type ConnectionRegistry interface {
	// DispatchPacket routes a packet to the connection identified by destConnID.
	// Packets for unknown connections are dropped.
	DispatchPacket(addr net.Addr, data []byte, srcConnID, destConnID ConnectionID)
	// CreateConnection creates the state for a connection whose client has completed address validation.
	CreateConnection(addr net.Addr, srcConnID, destConnID, origDestConnID ConnectionID) error
}

// A ConnectionIDAllocator derives the connection ID the server uses for a new connection.
// It must be a pure function of its inputs.
type ConnectionIDAllocator interface {
	DeriveFromOriginal(secret []byte, origDestConnID ConnectionID) (ConnectionID, error)
}

// A RetryTokenService issues and validates Retry tokens.
// Tokens are never stored by the server.
type RetryTokenService interface {
	Create(addr net.Addr, origDestConnID, newConnID ConnectionID, secret []byte) ([]byte, error)
	Validate(addr net.Addr, secret, token []byte) (origDestConnID, retrySrcConnID ConnectionID, err error)
}

type packetCodec interface {
	ParseHeader(data []byte) (*wire.Header, error)
	// ComposeVersionNegotiation takes the connection IDs of the packet that triggered the response.
	// Connection IDs of unsupported versions can be longer than 20 bytes.
	ComposeVersionNegotiation(srcConnID, destConnID protocol.ArbitraryLenConnectionID) ([]byte, error)
	// ComposeRetry takes the connection IDs of the client's Initial, and the connection ID chosen by the server.
	ComposeRetry(srcConnID, destConnID, newConnID ConnectionID, token []byte, v protocol.Version) ([]byte, error)
}

// A PacketHandler handles the packets of one connection.
type PacketHandler interface {
	HandlePacket(addr net.Addr, data []byte)
	Close() error
}

// A ConnectionFactory creates the PacketHandler for a new connection.
type ConnectionFactory func(addr net.Addr, srcConnID, destConnID, origDestConnID ConnectionID) (PacketHandler, error)

// The Tracer is invoked for every triage decision.
type Tracer = logging.Tracer

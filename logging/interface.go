// Package logging defines the tracing hooks of the ingress triage stage.
// This package should not be considered stable
package logging

import (
	"github.com/quic-go/ingress/internal/protocol"
)

type (
	// A ByteCount is used to count bytes.
	ByteCount = protocol.ByteCount
	// A ConnectionID is a QUIC Connection ID.
	ConnectionID = protocol.ConnectionID
	// An ArbitraryLenConnectionID is a QUIC Connection ID that can be up to 255 bytes long.
	ArbitraryLenConnectionID = protocol.ArbitraryLenConnectionID
	// The PacketType is the packet type of a QUIC packet
	PacketType = protocol.PacketType
	// A Version is a QUIC version number.
	Version = protocol.Version
)

const (
	// PacketTypeInitial is the packet type of an Initial packet
	PacketTypeInitial = protocol.PacketTypeInitial
	// PacketTypeHandshake is the packet type of a Handshake packet
	PacketTypeHandshake = protocol.PacketTypeHandshake
	// PacketTypeRetry is the packet type of a Retry packet
	PacketTypeRetry = protocol.PacketTypeRetry
	// PacketType0RTT is the packet type of a 0-RTT packet
	PacketType0RTT = protocol.PacketType0RTT
	// PacketTypeVersionNegotiation is the packet type of a Version Negotiation packet
	PacketTypeVersionNegotiation = protocol.PacketTypeVersionNegotiation
	// PacketType1RTT is a 1-RTT packet
	PacketType1RTT = protocol.PacketTypeShortHeader
	// PacketTypeUnknown is used when the packet type could not be determined
	PacketTypeUnknown = protocol.PacketTypeUnknown
)

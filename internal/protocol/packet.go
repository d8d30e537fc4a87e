package protocol

// PacketType is the packet type of a QUIC long header packet
type PacketType uint8

const (
	PacketTypeUnknown PacketType = iota
	// PacketTypeInitial is the packet type of an Initial packet
	PacketTypeInitial
	// PacketTypeRetry is the packet type of a Retry packet
	PacketTypeRetry
	// PacketTypeHandshake is the packet type of a Handshake packet
	PacketTypeHandshake
	// PacketType0RTT is the packet type of a 0-RTT packet
	PacketType0RTT
	// PacketTypeVersionNegotiation is the pseudo packet type of a Version Negotiation packet
	PacketTypeVersionNegotiation
	// PacketTypeShortHeader is the pseudo packet type of a short header (1-RTT) packet
	PacketTypeShortHeader
)

func (t PacketType) String() string {
	switch t {
	case PacketTypeInitial:
		return "Initial"
	case PacketTypeRetry:
		return "Retry"
	case PacketTypeHandshake:
		return "Handshake"
	case PacketType0RTT:
		return "0-RTT Protected"
	case PacketTypeVersionNegotiation:
		return "Version Negotiation"
	case PacketTypeShortHeader:
		return "1-RTT"
	default:
		return "unknown packet type"
	}
}

// A ByteCount in QUIC
type ByteCount int64

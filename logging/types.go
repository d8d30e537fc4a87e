package logging

// PacketDropReason is the reason why a packet was dropped during triage
type PacketDropReason uint8

const (
	// PacketDropUnknown is used when the reason is unknown
	PacketDropUnknown PacketDropReason = iota
	// PacketDropHeaderParseError is used when the header could not be parsed
	PacketDropHeaderParseError
	// PacketDropInvalidConnectionIDLength is used when a packet carrying a token
	// uses a destination connection ID that we can't have issued
	PacketDropInvalidConnectionIDLength
	// PacketDropInvalidToken is used when the Retry token could not be validated
	PacketDropInvalidToken
	// PacketDropInternalError is used when a response could not be generated
	PacketDropInternalError
	// PacketDropConnectionCreationFailed is used when the registry failed to create the connection
	PacketDropConnectionCreationFailed
)

func (r PacketDropReason) String() string {
	switch r {
	case PacketDropHeaderParseError:
		return "header_parse_error"
	case PacketDropInvalidConnectionIDLength:
		return "invalid_connection_id_length"
	case PacketDropInvalidToken:
		return "invalid_token"
	case PacketDropInternalError:
		return "internal_error"
	case PacketDropConnectionCreationFailed:
		return "connection_creation_failed"
	default:
		return "unknown"
	}
}

package wire

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/quic-go/ingress/internal/protocol"

	"github.com/quic-go/quic-go/quicvarint"
	"golang.org/x/crypto/cryptobyte"
)

// ErrInvalidHeader is returned (wrapped) for every packet whose header cannot be parsed.
var ErrInvalidHeader = errors.New("invalid header")

var (
	errTruncated                = fmt.Errorf("%w: truncated", ErrInvalidHeader)
	errNotQUIC                  = fmt.Errorf("%w: not a QUIC packet", ErrInvalidHeader)
	errVersionNegotiationPacket = fmt.Errorf("%w: unexpected Version Negotiation packet", ErrInvalidHeader)
)

// IsLongHeaderPacket says if this is a Long Header packet
func IsLongHeaderPacket(firstByte byte) bool {
	return firstByte&0x80 > 0
}

// The Header is the part of a QUIC packet header that is needed to triage the packet.
// Everything after the Length field (the packet number and the payload) is left untouched.
type Header struct {
	IsLongHeader bool
	Type         protocol.PacketType

	Version          protocol.Version
	VersionSupported bool

	SrcConnectionID  protocol.ConnectionID
	DestConnectionID protocol.ConnectionID

	// RawSrcConnectionID and RawDestConnectionID are only set for packets of unsupported versions.
	// Such packets may carry connection IDs of up to 255 bytes (RFC 8999),
	// in which case SrcConnectionID and DestConnectionID are left empty.
	RawSrcConnectionID  protocol.ArbitraryLenConnectionID
	RawDestConnectionID protocol.ArbitraryLenConnectionID

	Token []byte

	// Length is the value of the Length field of Initial, 0-RTT and Handshake packets.
	Length protocol.ByteCount
}

// IsInitial says if the packet needs to be triaged before a connection exists.
// This is the case for Initial packets of a supported version, and for every
// long header packet of an unsupported version, since its type bits can't be interpreted.
func (h *Header) IsInitial() bool {
	if !h.IsLongHeader {
		return false
	}
	return !h.VersionSupported || h.Type == protocol.PacketTypeInitial
}

// ParseHeader parses the header of a QUIC packet.
// Short header packets are expected to use connection IDs of length protocol.AllocatedConnIDLen.
// The returned Header doesn't reference data.
func ParseHeader(data []byte) (*Header, error) {
	s := cryptobyte.String(data)
	var typeByte uint8
	if !s.ReadUint8(&typeByte) {
		return nil, errTruncated
	}
	if !IsLongHeaderPacket(typeByte) {
		return parseShortHeader(typeByte, s)
	}
	return parseLongHeader(typeByte, s)
}

func parseShortHeader(typeByte byte, s cryptobyte.String) (*Header, error) {
	if typeByte&0x40 == 0 {
		return nil, errNotQUIC
	}
	var connID []byte
	if !s.ReadBytes(&connID, protocol.AllocatedConnIDLen) {
		return nil, errTruncated
	}
	return &Header{
		Type:             protocol.PacketTypeShortHeader,
		VersionSupported: true,
		DestConnectionID: protocol.ParseConnectionID(connID),
	}, nil
}

func parseLongHeader(typeByte byte, s cryptobyte.String) (*Header, error) {
	var (
		v             uint32
		destID, srcID cryptobyte.String
	)
	if !s.ReadUint32(&v) ||
		!s.ReadUint8LengthPrefixed(&destID) ||
		!s.ReadUint8LengthPrefixed(&srcID) {
		return nil, errTruncated
	}
	if v == 0 {
		return nil, errVersionNegotiationPacket
	}
	h := &Header{
		IsLongHeader: true,
		Version:      protocol.Version(v),
	}
	// If we don't understand the version, we have no idea how to interpret the rest of the bytes.
	// The connection IDs are echoed in the Version Negotiation packet, whatever their length.
	if !protocol.IsSupportedVersion(protocol.SupportedVersions, h.Version) {
		h.RawDestConnectionID = protocol.ArbitraryLenConnectionID(bytes.Clone([]byte(destID)))
		h.RawSrcConnectionID = protocol.ArbitraryLenConnectionID(bytes.Clone([]byte(srcID)))
		if len(destID) <= protocol.MaxConnIDLen {
			h.DestConnectionID = protocol.ParseConnectionID(destID)
		}
		if len(srcID) <= protocol.MaxConnIDLen {
			h.SrcConnectionID = protocol.ParseConnectionID(srcID)
		}
		return h, nil
	}
	h.VersionSupported = true
	var err error
	if h.DestConnectionID, err = protocol.ReadConnectionID(destID); err != nil {
		return nil, fmt.Errorf("%w: destination: %w", ErrInvalidHeader, err)
	}
	if h.SrcConnectionID, err = protocol.ReadConnectionID(srcID); err != nil {
		return nil, fmt.Errorf("%w: source: %w", ErrInvalidHeader, err)
	}
	if typeByte&0x40 == 0 {
		return nil, errNotQUIC
	}
	h.Type = longHeaderPacketType(typeByte, h.Version)
	switch h.Type {
	case protocol.PacketTypeRetry:
		// the remainder is the token and the integrity tag, a server has no use for either
		return h, nil
	case protocol.PacketTypeInitial:
		tokenLen, err := readVarInt(&s)
		if err != nil {
			return nil, err
		}
		var token []byte
		if tokenLen > uint64(len(s)) || !s.ReadBytes(&token, int(tokenLen)) {
			return nil, fmt.Errorf("%w: token length %d exceeds packet", ErrInvalidHeader, tokenLen)
		}
		if len(token) > 0 {
			h.Token = bytes.Clone(token)
		}
	}
	pl, err := readVarInt(&s)
	if err != nil {
		return nil, err
	}
	if pl > uint64(len(s)) {
		return nil, fmt.Errorf("%w: packet length (%d bytes) is smaller than the expected length (%d bytes)", ErrInvalidHeader, len(s), pl)
	}
	h.Length = protocol.ByteCount(pl)
	return h, nil
}

func readVarInt(s *cryptobyte.String) (uint64, error) {
	r := bytes.NewReader(*s)
	v, err := quicvarint.Read(r)
	if err != nil {
		return 0, errTruncated
	}
	s.Skip(len(*s) - r.Len())
	return v, nil
}

func longHeaderPacketType(typeByte byte, v protocol.Version) protocol.PacketType {
	t := (typeByte & 0x30) >> 4
	if v == protocol.Version2 {
		switch t {
		case 0b01:
			return protocol.PacketTypeInitial
		case 0b10:
			return protocol.PacketType0RTT
		case 0b11:
			return protocol.PacketTypeHandshake
		default:
			return protocol.PacketTypeRetry
		}
	}
	switch t {
	case 0b00:
		return protocol.PacketTypeInitial
	case 0b01:
		return protocol.PacketType0RTT
	case 0b10:
		return protocol.PacketTypeHandshake
	default:
		return protocol.PacketTypeRetry
	}
}

func longHeaderTypeBits(t protocol.PacketType, v protocol.Version) byte {
	if v == protocol.Version2 {
		//nolint:exhaustive
		switch t {
		case protocol.PacketTypeInitial:
			return 0b01
		case protocol.PacketType0RTT:
			return 0b10
		case protocol.PacketTypeHandshake:
			return 0b11
		case protocol.PacketTypeRetry:
			return 0b00
		}
	}
	//nolint:exhaustive
	switch t {
	case protocol.PacketTypeInitial:
		return 0b00
	case protocol.PacketType0RTT:
		return 0b01
	case protocol.PacketTypeHandshake:
		return 0b10
	case protocol.PacketTypeRetry:
		return 0b11
	}
	panic(fmt.Sprintf("no long header type bits for %s", t))
}

func (h *Header) String() string {
	if !h.IsLongHeader {
		return fmt.Sprintf("Short Header{DestConnectionID: %s}", h.DestConnectionID)
	}
	if !h.VersionSupported {
		return fmt.Sprintf("Long Header{Version: %s (unsupported), DestConnectionID: %s, SrcConnectionID: %s}", h.Version, h.DestConnectionID, h.SrcConnectionID)
	}
	return fmt.Sprintf("Long Header{Type: %s, DestConnectionID: %s, SrcConnectionID: %s, Token: %#x, Length: %d, Version: %s}", h.Type, h.DestConnectionID, h.SrcConnectionID, h.Token, h.Length, h.Version)
}

package wire

import (
	"crypto/rand"
	"errors"

	"github.com/quic-go/ingress/internal/protocol"

	"golang.org/x/crypto/cryptobyte"
)

// ParseVersionNegotiationPacket parses a Version Negotiation packet.
func ParseVersionNegotiationPacket(b []byte) (dest, src protocol.ArbitraryLenConnectionID, _ []protocol.Version, _ error) {
	s := cryptobyte.String(b)
	var (
		typeByte      uint8
		v             uint32
		destID, srcID cryptobyte.String
	)
	if !s.ReadUint8(&typeByte) || !s.ReadUint32(&v) ||
		!s.ReadUint8LengthPrefixed(&destID) || !s.ReadUint8LengthPrefixed(&srcID) {
		return nil, nil, nil, errTruncated
	}
	if !IsLongHeaderPacket(typeByte) || v != 0 {
		return nil, nil, nil, errors.New("not a Version Negotiation packet")
	}
	if len(s) == 0 {
		//nolint:stylecheck
		return nil, nil, nil, errors.New("Version Negotiation packet has empty version list")
	}
	if len(s)%4 != 0 {
		//nolint:stylecheck
		return nil, nil, nil, errors.New("Version Negotiation packet has a version list with an invalid length")
	}
	versions := make([]protocol.Version, 0, len(s)/4)
	for !s.Empty() {
		var v uint32
		s.ReadUint32(&v)
		versions = append(versions, protocol.Version(v))
	}
	return protocol.ArbitraryLenConnectionID(destID), protocol.ArbitraryLenConnectionID(srcID), versions, nil
}

// ComposeVersionNegotiation composes a Version Negotiation.
// One reserved version number is added to the list, at a random position.
func ComposeVersionNegotiation(destConnID, srcConnID protocol.ArbitraryLenConnectionID, versions []protocol.Version) ([]byte, error) {
	greasedVersions := protocol.GetGreasedVersions(versions)
	expectedLen := 1 /* type byte */ + 4 /* version field */ + 1 /* dest connection ID length field */ + destConnID.Len() + 1 /* src connection ID length field */ + srcConnID.Len() + len(greasedVersions)*4

	var typeByte [1]byte
	_, _ = rand.Read(typeByte[:]) // ignore the error here. It is not critical to have perfect random here.
	// Setting the "QUIC bit" (0x40) is not required by the RFC,
	// but it allows clients to demultiplex QUIC with a long list of other protocols.
	// See RFC 9443 for details.
	typeByte[0] |= 0xc0

	b := cryptobyte.NewFixedBuilder(make([]byte, 0, expectedLen))
	b.AddUint8(typeByte[0])
	b.AddUint32(0) // the version field of a Version Negotiation packet is 0
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(destConnID.Bytes()) })
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(srcConnID.Bytes()) })
	for _, v := range greasedVersions {
		b.AddUint32(uint32(v))
	}
	return b.Bytes()
}

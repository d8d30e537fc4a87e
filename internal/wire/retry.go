package wire

import (
	"crypto/rand"
	"errors"

	"github.com/quic-go/ingress/internal/handshake"
	"github.com/quic-go/ingress/internal/protocol"

	"golang.org/x/crypto/cryptobyte"
)

var errEmptyRetryToken = errors.New("a Retry packet must carry a token")

// ComposeRetry composes a Retry packet, including the Retry Integrity Tag.
// destConnID is the client's source connection ID, srcConnID is the connection ID chosen by the server,
// and origDestConnID is the destination connection ID of the client's Initial.
func ComposeRetry(destConnID, srcConnID, origDestConnID protocol.ConnectionID, token []byte, v protocol.Version) ([]byte, error) {
	if len(token) == 0 {
		return nil, errEmptyRetryToken
	}
	if !protocol.IsSupportedVersion(protocol.SupportedVersions, v) {
		return nil, ErrUnsupportedVersion
	}
	var typeByte [1]byte
	_, _ = rand.Read(typeByte[:]) // the 4 low bits are unused
	typeByte[0] = 0xc0 | longHeaderTypeBits(protocol.PacketTypeRetry, v)<<4 | typeByte[0]&0xf

	b := cryptobyte.NewBuilder(make([]byte, 0, 1+4+1+destConnID.Len()+1+srcConnID.Len()+len(token)+16))
	b.AddUint8(typeByte[0])
	b.AddUint32(uint32(v))
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(destConnID.Bytes()) })
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(srcConnID.Bytes()) })
	b.AddBytes(token)
	retry, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	tag := handshake.GetRetryIntegrityTag(retry, origDestConnID, v)
	return append(retry, tag[:]...), nil
}

// ErrUnsupportedVersion is returned when a packet would have to be composed for a version we don't speak.
var ErrUnsupportedVersion = errors.New("unsupported version")

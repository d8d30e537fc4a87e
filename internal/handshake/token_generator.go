package handshake

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/quic-go/ingress/internal/protocol"
)

// ErrInvalidToken is returned when a token can't be used to validate the client's address.
var ErrInvalidToken = errors.New("invalid token")

const (
	tokenPrefixIP byte = iota
	tokenPrefixString
)

// A Token is derived from the client address and can be used to verify the ownership of this address.
type Token struct {
	encodedRemoteAddr []byte
	SentTime          time.Time
	// the original destination connection ID of the client's Initial
	OriginalDestConnectionID protocol.ConnectionID
	// the source connection ID used in the Retry packet
	RetrySrcConnectionID protocol.ConnectionID
}

// ValidateRemoteAddr validates the address, but does not check expiration
func (t *Token) ValidateRemoteAddr(addr net.Addr) bool {
	return bytes.Equal(encodeRemoteAddr(addr), t.encodedRemoteAddr)
}

// token is the struct that is used for ASN1 serialization and deserialization
type token struct {
	RemoteAddr               []byte
	Timestamp                int64
	OriginalDestConnectionID []byte
	RetrySrcConnectionID     []byte
}

// A TokenGenerator generates tokens
type TokenGenerator struct {
	tokenProtector *tokenProtector
}

// NewTokenGenerator initializes a new TokenGenerator
func NewTokenGenerator(key TokenProtectorKey) *TokenGenerator {
	return &TokenGenerator{tokenProtector: newTokenProtector(key)}
}

// NewRetryToken generates a new token for a Retry for a given source address
func (g *TokenGenerator) NewRetryToken(
	raddr net.Addr,
	origDestConnID protocol.ConnectionID,
	retrySrcConnID protocol.ConnectionID,
) ([]byte, error) {
	data, err := asn1.Marshal(token{
		RemoteAddr:               encodeRemoteAddr(raddr),
		OriginalDestConnectionID: origDestConnID.Bytes(),
		RetrySrcConnectionID:     retrySrcConnID.Bytes(),
		Timestamp:                time.Now().UnixNano(),
	})
	if err != nil {
		return nil, err
	}
	return g.tokenProtector.NewToken(data)
}

// DecodeToken decodes a token
func (g *TokenGenerator) DecodeToken(encrypted []byte) (*Token, error) {
	// if the client didn't send any token, DecodeToken will be called with a nil-slice
	if len(encrypted) == 0 {
		return nil, nil
	}

	data, err := g.tokenProtector.DecodeToken(encrypted)
	if err != nil {
		return nil, err
	}
	t := &token{}
	rest, err := asn1.Unmarshal(data, t)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("rest when unpacking token: %d", len(rest))
	}
	origDestConnID, err := protocol.ReadConnectionID(t.OriginalDestConnectionID)
	if err != nil {
		return nil, err
	}
	retrySrcConnID, err := protocol.ReadConnectionID(t.RetrySrcConnectionID)
	if err != nil {
		return nil, err
	}
	return &Token{
		encodedRemoteAddr:        t.RemoteAddr,
		SentTime:                 time.Unix(0, t.Timestamp),
		OriginalDestConnectionID: origDestConnID,
		RetrySrcConnectionID:     retrySrcConnID,
	}, nil
}

// encodeRemoteAddr encodes a remote address such that it can be saved in the token.
// For UDP addresses only the IP is saved, the port may change when a NAT rebinds.
func encodeRemoteAddr(remoteAddr net.Addr) []byte {
	if udpAddr, ok := remoteAddr.(*net.UDPAddr); ok {
		return append([]byte{tokenPrefixIP}, udpAddr.IP.To16()...)
	}
	return append([]byte{tokenPrefixString}, []byte(remoteAddr.String())...)
}

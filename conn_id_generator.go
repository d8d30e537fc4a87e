package ingress

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"github.com/quic-go/ingress/internal/protocol"
)

var errEmptyConnIDSecret = errors.New("connection ID secret must not be empty")

// The HMACConnectionIDAllocator derives connection IDs using HMAC-SHA256.
// The connection ID is the first 20 bytes of HMAC(secret, origDestConnID).
// It holds no state and is safe for concurrent use.
type HMACConnectionIDAllocator struct{}

var _ ConnectionIDAllocator = &HMACConnectionIDAllocator{}

func (a *HMACConnectionIDAllocator) DeriveFromOriginal(secret []byte, origDestConnID ConnectionID) (ConnectionID, error) {
	if len(secret) == 0 {
		return ConnectionID{}, errEmptyConnIDSecret
	}
	h := hmac.New(sha256.New, secret)
	h.Write(origDestConnID.Bytes())
	var sum [sha256.Size]byte
	return protocol.ParseConnectionID(h.Sum(sum[:0])[:protocol.AllocatedConnIDLen]), nil
}

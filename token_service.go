package ingress

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/quic-go/ingress/internal/handshake"
)

// The TokenService issues Retry tokens encrypted with AES-GCM.
// The key is derived from the secret passed to every call, so the TokenService holds no
// state and can be shared between workers.
type TokenService struct {
	validity time.Duration
	now      func() time.Time

	allocator    ConnectionIDAllocator
	connIDSecret []byte
}

var _ RetryTokenService = &TokenService{}

// NewTokenService creates a new TokenService.
// Tokens older than validity are rejected.
// If allocator is not nil, a token is only accepted if its retry source connection ID is the one
// allocator derives from the token's original destination connection ID using connIDSecret.
func NewTokenService(validity time.Duration, allocator ConnectionIDAllocator, connIDSecret []byte) *TokenService {
	return &TokenService{
		validity:     validity,
		now:          time.Now,
		allocator:    allocator,
		connIDSecret: connIDSecret,
	}
}

func (s *TokenService) Create(addr net.Addr, origDestConnID, newConnID ConnectionID, secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.New("ingress: empty token secret")
	}
	g := handshake.NewTokenGenerator(handshake.TokenProtectorKeyFromSecret(secret))
	return g.NewRetryToken(addr, origDestConnID, newConnID)
}

func (s *TokenService) Validate(addr net.Addr, secret, token []byte) (origDestConnID, retrySrcConnID ConnectionID, _ error) {
	if len(token) == 0 {
		return ConnectionID{}, ConnectionID{}, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}
	g := handshake.NewTokenGenerator(handshake.TokenProtectorKeyFromSecret(secret))
	t, err := g.DecodeToken(token)
	if err != nil {
		return ConnectionID{}, ConnectionID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !t.ValidateRemoteAddr(addr) {
		return ConnectionID{}, ConnectionID{}, fmt.Errorf("%w: address mismatch", ErrInvalidToken)
	}
	if age := s.now().Sub(t.SentTime); age > s.validity {
		return ConnectionID{}, ConnectionID{}, fmt.Errorf("%w: expired %s ago", ErrInvalidToken, age-s.validity)
	}
	if s.allocator != nil {
		expected, err := s.allocator.DeriveFromOriginal(s.connIDSecret, t.OriginalDestConnectionID)
		if err != nil {
			return ConnectionID{}, ConnectionID{}, fmt.Errorf("deriving retry source connection ID: %w", err)
		}
		if t.RetrySrcConnectionID != expected {
			return ConnectionID{}, ConnectionID{}, fmt.Errorf("%w: retry source connection ID mismatch", ErrInvalidToken)
		}
	}
	return t.OriginalDestConnectionID, t.RetrySrcConnectionID, nil
}

package ingress

import (
	"errors"

	"github.com/quic-go/ingress/internal/handshake"
)

var (
	// ErrDispatchTimeout is returned by Dispatch when the worker didn't acknowledge
	// the packet within Config.DispatchTimeout.
	// It doesn't mean that the packet was dropped: the worker still processes it if it was enqueued.
	ErrDispatchTimeout = errors.New("ingress: dispatch timed out")
	// ErrWorkerClosed is returned by Dispatch after the worker was closed.
	ErrWorkerClosed = errors.New("ingress: worker closed")
	// ErrInvalidToken is returned by the RetryTokenService when a token can't be used.
	ErrInvalidToken = handshake.ErrInvalidToken
	// ErrConnectionExists is returned by the Registry when a connection ID is already in use.
	ErrConnectionExists = errors.New("ingress: connection already exists")
	// ErrRegistryClosed is returned by the Registry after it was closed.
	ErrRegistryClosed = errors.New("ingress: registry closed")

	errInvalidConnIDLen = errors.New("destination connection ID was not issued by this server")
)

package ingress

import (
	"errors"
	"log/slog"
	"time"

	"github.com/quic-go/ingress/internal/logutils"
	"github.com/quic-go/ingress/internal/protocol"
	"github.com/quic-go/ingress/logging"
)

// Config contains all configuration data needed to run the triage workers.
// It must not be modified after it was passed to NewWorker or NewPool.
type Config struct {
	// Handler identifies the deployment. It is attached to every log line.
	Handler string
	// Transport is used to send Version Negotiation and Retry packets.
	Transport Transport
	// Registry receives the packets of existing connections and creates new ones.
	Registry ConnectionRegistry
	// TokenSecret is the secret used to protect Retry tokens.
	// All workers of one deployment must use the same secret.
	TokenSecret []byte
	// ConnIDSecret is the secret used to derive the server's connection IDs.
	// All workers of one deployment must use the same secret.
	ConnIDSecret []byte
	// Trace enables debug logging of dropped packets.
	Trace bool
	// DispatchTimeout is the maximum time Dispatch blocks.
	// If zero, a timeout of 50ms is used.
	DispatchTimeout time.Duration
	// QueueSize is the number of packets that can be enqueued for a worker.
	// If zero, a single packet is queued.
	QueueSize int
	// TokenValidity is the time a Retry token is valid for.
	// If zero, tokens are valid for 10 seconds.
	TokenValidity time.Duration
	// Allocator derives new connection IDs.
	// If nil, connection IDs are derived using HMAC-SHA256.
	Allocator ConnectionIDAllocator
	// TokenService issues and validates Retry tokens.
	// If nil, tokens are encrypted using AES-GCM.
	TokenService RetryTokenService
	Tracer       *logging.Tracer
	// Logger is used for all log output. It defaults to a logger configured from the environment.
	Logger *slog.Logger
}

func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("ingress: Config required")
	}
	if config.Transport == nil {
		return errors.New("ingress: Transport required")
	}
	if config.Registry == nil {
		return errors.New("ingress: Registry required")
	}
	if len(config.TokenSecret) == 0 {
		return errors.New("ingress: TokenSecret required")
	}
	if len(config.ConnIDSecret) == 0 {
		return errors.New("ingress: ConnIDSecret required")
	}
	if config.DispatchTimeout < 0 {
		return errors.New("invalid value for Config.DispatchTimeout")
	}
	if config.QueueSize < 0 {
		return errors.New("invalid value for Config.QueueSize")
	}
	if config.TokenValidity < 0 {
		return errors.New("invalid value for Config.TokenValidity")
	}
	return nil
}

// populateConfig returns a copy of config with default values set for all fields that weren't set.
func populateConfig(config *Config) *Config {
	c := *config
	if c.DispatchTimeout == 0 {
		c.DispatchTimeout = protocol.DefaultDispatchTimeout
	}
	if c.QueueSize == 0 {
		c.QueueSize = 1
	}
	if c.TokenValidity == 0 {
		c.TokenValidity = protocol.RetryTokenValidity
	}
	if c.Allocator == nil {
		c.Allocator = &HMACConnectionIDAllocator{}
	}
	if c.TokenService == nil {
		c.TokenService = NewTokenService(c.TokenValidity, c.Allocator, c.ConnIDSecret)
	}
	if c.Tracer == nil {
		c.Tracer = &logging.Tracer{}
	}
	if c.Logger == nil {
		c.Logger = logutils.DefaultLogger
	}
	return &c
}

package ingress

import (
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/quic-go/ingress/internal/logutils"
	"github.com/quic-go/ingress/internal/protocol"
	"github.com/quic-go/ingress/internal/wire"
	"github.com/quic-go/ingress/logging"
)

type dispatchRequest struct {
	addr net.Addr
	data []byte
	// closed by the worker once the packet was handled
	done chan struct{}
}

// A Worker triages packets, one at a time.
// Dispatch may be called concurrently.
type Worker struct {
	config *Config
	codec  packetCodec
	tracer *logging.Tracer
	logger *slog.Logger

	requests chan dispatchRequest

	closeOnce  sync.Once
	closing    chan struct{}
	runStopped chan struct{}
}

// NewWorker creates a new Worker and starts its run loop.
func NewWorker(config *Config) (*Worker, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	w := newWorker(populateConfig(config), wireCodec{})
	go w.run()
	return w, nil
}

// newWorker expects a populated config. It doesn't start the run loop.
func newWorker(config *Config, codec packetCodec) *Worker {
	return &Worker{
		config:     config,
		codec:      codec,
		tracer:     config.Tracer,
		logger:     config.Logger.With(logutils.ComponentKey, "worker", "handler", config.Handler),
		requests:   make(chan dispatchRequest, config.QueueSize),
		closing:    make(chan struct{}),
		runStopped: make(chan struct{}),
	}
}

// Dispatch hands a packet to the worker, and waits until the worker has handled it.
// If the worker doesn't acknowledge the packet within Config.DispatchTimeout, ErrDispatchTimeout is returned.
// The packet is not withdrawn in that case, and the worker might still act on it.
// data must not be modified after Dispatch was called.
func (w *Worker) Dispatch(addr net.Addr, data []byte) error {
	select {
	case <-w.closing:
		return ErrWorkerClosed
	default:
	}

	timer := time.NewTimer(w.config.DispatchTimeout)
	defer timer.Stop()

	req := dispatchRequest{addr: addr, data: data, done: make(chan struct{})}
	select {
	case w.requests <- req:
	case <-w.closing:
		return ErrWorkerClosed
	case <-timer.C:
		w.dispatchTimedOut(addr, data)
		return ErrDispatchTimeout
	}
	select {
	case <-req.done:
		return nil
	case <-w.runStopped:
		// the run loop might have finished this packet right before stopping
		select {
		case <-req.done:
			return nil
		default:
			return ErrWorkerClosed
		}
	case <-timer.C:
		w.dispatchTimedOut(addr, data)
		return ErrDispatchTimeout
	}
}

func (w *Worker) dispatchTimedOut(addr net.Addr, data []byte) {
	if w.config.Trace {
		w.logger.Debug("dispatch timed out", "remote", addr, "size", len(data))
	}
	if w.tracer != nil && w.tracer.DispatchTimedOut != nil {
		w.tracer.DispatchTimedOut(addr, protocol.ByteCount(len(data)))
	}
}

func (w *Worker) run() {
	defer close(w.runStopped)
	for {
		select {
		case <-w.closing:
			return
		case req := <-w.requests:
			w.handlePacket(req.addr, req.data)
			close(req.done)
		}
	}
}

// Close stops the worker.
// A packet that is being handled is handled to completion.
// Packets that are still queued are not handled.
func (w *Worker) Close() error {
	w.closeOnce.Do(func() { close(w.closing) })
	<-w.runStopped
	return nil
}

// handlePacket handles every outcome itself.
// Nothing that happens here is reported back to the caller of Dispatch.
func (w *Worker) handlePacket(addr net.Addr, data []byte) {
	hdr, err := w.codec.ParseHeader(data)
	if err != nil {
		if w.config.Trace {
			w.logger.Debug("dropping packet with invalid header", "remote", addr, "size", len(data), "error", err)
		}
		w.dropped(addr, protocol.PacketTypeUnknown, len(data), logging.PacketDropHeaderParseError)
		return
	}

	switch {
	case !hdr.IsInitial():
		w.forward(addr, data, hdr)
	case !hdr.VersionSupported:
		w.sendVersionNegotiation(addr, len(data), hdr)
	case len(hdr.Token) == 0:
		w.sendRetry(addr, len(data), hdr)
	case len(hdr.Token) > 0:
		w.handleInitialWithToken(addr, data, hdr)
	default:
		w.dropped(addr, hdr.Type, len(data), logging.PacketDropUnknown)
	}
}

func (w *Worker) forward(addr net.Addr, data []byte, hdr *wire.Header) {
	w.config.Registry.DispatchPacket(addr, data, hdr.SrcConnectionID, hdr.DestConnectionID)
	if w.tracer != nil && w.tracer.ForwardedPacket != nil {
		w.tracer.ForwardedPacket(addr, hdr.Type, hdr.DestConnectionID, protocol.ByteCount(len(data)))
	}
}

func (w *Worker) sendVersionNegotiation(addr net.Addr, size int, hdr *wire.Header) {
	b, err := w.codec.ComposeVersionNegotiation(hdr.RawSrcConnectionID, hdr.RawDestConnectionID)
	if err != nil {
		w.logger.Error("composing Version Negotiation packet failed", "remote", addr, "version", hdr.Version, "error", err)
		w.dropped(addr, hdr.Type, size, logging.PacketDropInternalError)
		return
	}
	if w.config.Trace {
		w.logger.Debug("sending Version Negotiation packet", "remote", addr, "version", hdr.Version)
	}
	if err := w.config.Transport.Send(addr, b); err != nil {
		w.logger.Error("sending Version Negotiation packet failed", "remote", addr, "error", err)
		return
	}
	if w.tracer != nil && w.tracer.SentVersionNegotiationPacket != nil {
		w.tracer.SentVersionNegotiationPacket(addr, hdr.RawSrcConnectionID, hdr.RawDestConnectionID, protocol.SupportedVersions)
	}
}

// sendRetry asks the client to prove ownership of its address.
// No state is allocated for the client.
func (w *Worker) sendRetry(addr net.Addr, size int, hdr *wire.Header) {
	newConnID, err := w.config.Allocator.DeriveFromOriginal(w.config.ConnIDSecret, hdr.DestConnectionID)
	if err != nil {
		w.logger.Error("deriving connection ID failed", "remote", addr, "error", err)
		w.dropped(addr, hdr.Type, size, logging.PacketDropInternalError)
		return
	}
	token, err := w.config.TokenService.Create(addr, hdr.DestConnectionID, newConnID, w.config.TokenSecret)
	if err != nil {
		w.logger.Error("creating Retry token failed", "remote", addr, "error", err)
		w.dropped(addr, hdr.Type, size, logging.PacketDropInternalError)
		return
	}
	b, err := w.codec.ComposeRetry(hdr.SrcConnectionID, hdr.DestConnectionID, newConnID, token, hdr.Version)
	if err != nil {
		w.logger.Error("composing Retry packet failed", "remote", addr, "error", err)
		w.dropped(addr, hdr.Type, size, logging.PacketDropInternalError)
		return
	}
	if w.config.Trace {
		w.logger.Debug("sending Retry", "remote", addr, "orig_dest_conn_id", hdr.DestConnectionID, "new_conn_id", newConnID)
	}
	if err := w.config.Transport.Send(addr, b); err != nil {
		w.logger.Error("sending Retry failed", "remote", addr, "error", err)
		return
	}
	if w.tracer != nil && w.tracer.SentRetry != nil {
		w.tracer.SentRetry(addr, hdr.DestConnectionID, newConnID, hdr.Version)
	}
}

// handleInitialWithToken validates the Retry token and creates the connection.
// Invalid packets are dropped without a response.
func (w *Worker) handleInitialWithToken(addr net.Addr, data []byte, hdr *wire.Header) {
	// we only issue connection IDs of this length
	if hdr.DestConnectionID.Len() != protocol.AllocatedConnIDLen {
		if w.config.Trace {
			w.logger.Debug("dropping Initial", "remote", addr, "dest_conn_id", hdr.DestConnectionID, "error", errInvalidConnIDLen)
		}
		w.dropped(addr, hdr.Type, len(data), logging.PacketDropInvalidConnectionIDLength)
		return
	}
	origDestConnID, _, err := w.config.TokenService.Validate(addr, w.config.TokenSecret, hdr.Token)
	if err != nil {
		if w.config.Trace {
			w.logger.Debug("dropping Initial with invalid token", "remote", addr, "error", err)
		}
		w.dropped(addr, hdr.Type, len(data), logging.PacketDropInvalidToken)
		return
	}
	if err := w.config.Registry.CreateConnection(addr, hdr.SrcConnectionID, hdr.DestConnectionID, origDestConnID); err != nil {
		w.logger.Error("creating connection failed", "remote", addr, "dest_conn_id", hdr.DestConnectionID, "error", err)
		w.dropped(addr, hdr.Type, len(data), logging.PacketDropConnectionCreationFailed)
		return
	}
	if w.tracer != nil && w.tracer.CreatedConnection != nil {
		w.tracer.CreatedConnection(addr, hdr.SrcConnectionID, hdr.DestConnectionID, origDestConnID)
	}
	// the Initial carries the ClientHello, it needs to be handled by the new connection
	w.forward(addr, data, hdr)
}

func (w *Worker) dropped(addr net.Addr, pt protocol.PacketType, size int, reason logging.PacketDropReason) {
	if w.tracer != nil && w.tracer.DroppedPacket != nil {
		w.tracer.DroppedPacket(addr, pt, protocol.ByteCount(size), reason)
	}
}

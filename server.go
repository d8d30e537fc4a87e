package ingress

import (
	"errors"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/quic-go/ingress/internal/logutils"
	"github.com/quic-go/ingress/internal/protocol"

	"golang.org/x/net/ipv4"
	"golang.org/x/time/rate"
)

// A PacketDispatcher accepts packets for triage.
// It is implemented by Worker and Pool.
type PacketDispatcher interface {
	Dispatch(addr net.Addr, data []byte) error
}

// ListenerConfig configures a Listener.
type ListenerConfig struct {
	// Limiter limits the rate of datagrams handed to the dispatcher.
	// Datagrams exceeding the rate are dropped. If nil, the rate is not limited.
	Limiter *rate.Limiter
	// DisableReceiveBufferIncrease disables increasing the socket's receive buffer.
	DisableReceiveBufferIncrease bool
	// DisableBatchReading makes the Listener read one datagram per system call,
	// even if the connection supports reading batches.
	DisableBatchReading bool
	Logger              *slog.Logger
}

// A Listener reads datagrams from a net.PacketConn and dispatches them.
type Listener struct {
	conn net.PacketConn
	// nil if the connection doesn't support batch reads
	batchConn  batchConn
	dispatcher PacketDispatcher
	limiter    *rate.Limiter
	logger     *slog.Logger

	inFlight sync.WaitGroup
	closed   atomic.Bool
}

// NewListener creates a new Listener.
// config may be nil.
func NewListener(conn net.PacketConn, dispatcher PacketDispatcher, config *ListenerConfig) *Listener {
	if config == nil {
		config = &ListenerConfig{}
	}
	logger := config.Logger
	if logger == nil {
		logger = logutils.DefaultLogger
	}
	l := &Listener{
		conn:       conn,
		dispatcher: dispatcher,
		limiter:    config.Limiter,
		logger:     logger.With(logutils.ComponentKey, "listener"),
	}
	if !config.DisableReceiveBufferIncrease {
		if err := setReceiveBuffer(conn, l.logger); err != nil {
			l.logger.Warn("failed to increase receive buffer size", "error", err)
		}
	}
	if !config.DisableBatchReading {
		l.batchConn = newBatchConn(conn)
	}
	return l
}

// Serve reads datagrams until the Listener is closed, or reading from the connection fails.
// After Close, Serve returns nil once all dispatched packets have been acknowledged.
func (l *Listener) Serve() error {
	if l.batchConn != nil {
		return l.serveBatches()
	}
	buf := make([]byte, protocol.MaxPacketBufferSize)
	for {
		n, addr, err := l.conn.ReadFrom(buf)
		if err != nil {
			return l.readFailed(err)
		}
		l.handleDatagram(addr, buf[:n])
	}
}

// serveBatches reads up to batchSize datagrams per system call.
func (l *Listener) serveBatches() error {
	bufs := make([][]byte, batchSize)
	msgs := make([]ipv4.Message, batchSize)
	for i := range msgs {
		bufs[i] = make([]byte, protocol.MaxPacketBufferSize)
		msgs[i].Buffers = [][]byte{bufs[i]}
	}
	for {
		n, err := l.batchConn.ReadBatch(msgs, 0)
		if err != nil {
			return l.readFailed(err)
		}
		for i := range msgs[:n] {
			msg := &msgs[i]
			l.handleDatagram(msg.Addr, msg.Buffers[0][:msg.N])
			// handleDatagram copied the data, so the buffer can be reused
			msg.Buffers[0] = bufs[i]
		}
	}
}

func (l *Listener) readFailed(err error) error {
	l.inFlight.Wait()
	if l.closed.Load() {
		return nil
	}
	return err
}

func (l *Listener) handleDatagram(addr net.Addr, b []byte) {
	if len(b) < protocol.MinPacketSize || len(b) > protocol.MaxPacketSize {
		l.logger.Debug("dropping datagram", "remote", addr, "size", len(b), "reason", "invalid size")
		return
	}
	if l.limiter != nil && !l.limiter.Allow() {
		l.logger.Debug("dropping datagram", "remote", addr, "size", len(b), "reason", "rate limited")
		return
	}
	// buf is reused for the next read
	data := make([]byte, len(b))
	copy(data, b)

	l.inFlight.Add(1)
	go func() {
		defer l.inFlight.Done()
		if err := l.dispatcher.Dispatch(addr, data); err != nil && !errors.Is(err, ErrWorkerClosed) {
			l.logger.Debug("dispatching packet failed", "remote", addr, "size", len(data), "error", err)
		}
	}()
}

// Close closes the underlying connection, which makes Serve return.
func (l *Listener) Close() error {
	if l.closed.Swap(true) {
		return nil
	}
	return l.conn.Close()
}

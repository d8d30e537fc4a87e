package ingress

import (
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/quic-go/ingress/internal/logutils"
	"github.com/quic-go/ingress/internal/protocol"

	"golang.org/x/sync/singleflight"
)

// The Registry stores the PacketHandlers of all connections, identified by the connection ID chosen by the server.
type Registry struct {
	mutex sync.RWMutex

	// a nil handler marks a connection that was recently closed
	handlers map[ConnectionID]PacketHandler
	closed   bool

	creating singleflight.Group
	factory  ConnectionFactory

	deleteClosedConnsAfter time.Duration

	logger *slog.Logger
}

var _ ConnectionRegistry = &Registry{}

// NewRegistry creates a new Registry.
// PacketHandlers for new connections are created by factory.
// If logger is nil, the default logger is used.
func NewRegistry(factory ConnectionFactory, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = logutils.DefaultLogger
	}
	return &Registry{
		handlers:               make(map[ConnectionID]PacketHandler),
		factory:                factory,
		deleteClosedConnsAfter: protocol.ClosedConnDeleteTimeout,
		logger:                 logger.With(logutils.ComponentKey, "registry"),
	}
}

func (r *Registry) get(id ConnectionID) (PacketHandler, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	handler, ok := r.handlers[id]
	return handler, ok
}

// DispatchPacket passes the packet to the connection identified by destConnID.
func (r *Registry) DispatchPacket(addr net.Addr, data []byte, _, destConnID ConnectionID) {
	handler, ok := r.get(destConnID)
	if !ok {
		r.logger.Debug("dropping packet for unknown connection", "remote", addr, "dest_conn_id", destConnID, "size", len(data))
		return
	}
	if handler == nil {
		r.logger.Debug("dropping packet for closed connection", "remote", addr, "dest_conn_id", destConnID, "size", len(data))
		return
	}
	handler.HandlePacket(addr, data)
}

// CreateConnection creates a new connection, identified by destConnID.
// Concurrent calls for the same connection ID only create a single connection.
// It is an error to create a connection for a connection ID that is already in use.
func (r *Registry) CreateConnection(addr net.Addr, srcConnID, destConnID, origDestConnID ConnectionID) error {
	_, err, shared := r.creating.Do(string(destConnID.Bytes()), func() (any, error) {
		r.mutex.RLock()
		_, exists := r.handlers[destConnID]
		closed := r.closed
		r.mutex.RUnlock()
		if closed {
			return nil, ErrRegistryClosed
		}
		if exists {
			return nil, ErrConnectionExists
		}

		handler, err := r.factory(addr, srcConnID, destConnID, origDestConnID)
		if err != nil {
			return nil, err
		}

		r.mutex.Lock()
		if r.closed {
			r.mutex.Unlock()
			_ = handler.Close()
			return nil, ErrRegistryClosed
		}
		r.handlers[destConnID] = handler
		r.mutex.Unlock()
		r.logger.Debug("created connection", "remote", addr, "dest_conn_id", destConnID, "orig_dest_conn_id", origDestConnID)
		return handler, nil
	})
	if shared && err == nil {
		r.logger.Debug("connection creation deduplicated", "dest_conn_id", destConnID)
	}
	return err
}

// Remove removes a connection.
// Packets for the connection ID are dropped for a while, after which the connection ID can be reused.
func (r *Registry) Remove(id ConnectionID) {
	r.mutex.Lock()
	if _, ok := r.handlers[id]; !ok {
		r.mutex.Unlock()
		return
	}
	r.handlers[id] = nil
	r.mutex.Unlock()

	time.AfterFunc(r.deleteClosedConnsAfter, func() {
		r.mutex.Lock()
		if h, ok := r.handlers[id]; ok && h == nil {
			delete(r.handlers, id)
		}
		r.mutex.Unlock()
	})
}

// Len returns the number of connections, including recently closed ones.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.handlers)
}

// Close closes all connections.
func (r *Registry) Close() error {
	r.mutex.Lock()
	if r.closed {
		r.mutex.Unlock()
		return nil
	}
	r.closed = true

	var wg sync.WaitGroup
	for _, handler := range r.handlers {
		if handler != nil {
			wg.Add(1)
			go func(handler PacketHandler) {
				// Close might block until the connection has been shut down
				_ = handler.Close()
				wg.Done()
			}(handler)
		}
	}
	r.mutex.Unlock()
	wg.Wait()
	return nil
}

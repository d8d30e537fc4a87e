package main

import (
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/quic-go/ingress"
)

// A conn stands in for the connection state machine that runs after triage.
// It counts packets, and removes itself from the registry once it has been idle for too long.
type conn struct {
	id      ingress.ConnectionID
	remote  net.Addr
	logger  *slog.Logger
	onClose func(ingress.ConnectionID)

	idleTimeout time.Duration

	mutex   sync.Mutex
	packets int
	bytes   int
	timer   *time.Timer
	closed  bool
}

var _ ingress.PacketHandler = &conn{}

func newConn(id ingress.ConnectionID, remote net.Addr, idleTimeout time.Duration, logger *slog.Logger, onClose func(ingress.ConnectionID)) *conn {
	c := &conn{
		id:          id,
		remote:      remote,
		logger:      logger,
		onClose:     onClose,
		idleTimeout: idleTimeout,
	}
	c.timer = time.AfterFunc(idleTimeout, c.timeout)
	return c
}

func (c *conn) HandlePacket(addr net.Addr, data []byte) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.closed {
		return
	}
	c.packets++
	c.bytes += len(data)
	c.timer.Reset(c.idleTimeout)
}

func (c *conn) timeout() {
	c.logger.Debug("connection idle", "conn_id", c.id, "remote", c.remote)
	if c.close() {
		c.onClose(c.id)
	}
}

func (c *conn) close() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.closed {
		return false
	}
	c.closed = true
	c.timer.Stop()
	c.logger.Debug("connection closed", "conn_id", c.id, "remote", c.remote, "packets", c.packets, "bytes", c.bytes)
	return true
}

func (c *conn) Close() error {
	c.close()
	return nil
}

package ingress

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"syscall"

	"github.com/quic-go/ingress/internal/protocol"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// setReceiveBuffer increases the receive buffer of the socket.
// Under load, the default buffer size is too small to absorb bursts of Initials.
func setReceiveBuffer(c net.PacketConn, logger *slog.Logger) error {
	conn, ok := c.(interface{ SetReadBuffer(int) error })
	if !ok {
		return errors.New("connection doesn't allow setting of receive buffer size. Not a *net.UDPConn?")
	}
	sc, ok := c.(interface {
		SyscallConn() (syscall.RawConn, error)
	})
	if !ok {
		return errors.New("connection doesn't provide a syscall.RawConn")
	}
	rawConn, err := sc.SyscallConn()
	if err != nil {
		return fmt.Errorf("couldn't get syscall.RawConn: %w", err)
	}

	size, err := inspectReadBuffer(rawConn)
	if err != nil {
		return fmt.Errorf("failed to determine receive buffer size: %w", err)
	}
	if size >= protocol.DesiredReceiveBufferSize {
		logger.Debug("receive buffer already large enough", "size", size)
		return nil
	}
	// Ignore the error. We check if we succeeded by querying the buffer size afterward.
	_ = conn.SetReadBuffer(protocol.DesiredReceiveBufferSize)
	newSize, err := inspectReadBuffer(rawConn)
	if newSize < protocol.DesiredReceiveBufferSize {
		// Try again with RCVBUFFORCE on Linux
		_ = forceSetReceiveBuffer(rawConn, protocol.DesiredReceiveBufferSize)
		newSize, err = inspectReadBuffer(rawConn)
		if err != nil {
			return fmt.Errorf("failed to determine receive buffer size: %w", err)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to determine receive buffer size: %w", err)
	}
	if newSize == size {
		return fmt.Errorf("failed to increase receive buffer size (wanted: %d kiB, got %d kiB)", protocol.DesiredReceiveBufferSize/1024, newSize/1024)
	}
	if newSize < protocol.DesiredReceiveBufferSize {
		return fmt.Errorf("failed to sufficiently increase receive buffer size (was: %d kiB, wanted: %d kiB, got: %d kiB)", size/1024, protocol.DesiredReceiveBufferSize/1024, newSize/1024)
	}
	logger.Debug("increased receive buffer size", "size", newSize)
	return nil
}

// batchConn is implemented by ipv4.PacketConn and ipv6.PacketConn.
type batchConn interface {
	ReadBatch(ms []ipv4.Message, flags int) (int, error)
}

// newBatchConn returns nil if c is not a *net.UDPConn,
// or if the platform only reads a single datagram per ReadBatch call.
func newBatchConn(c net.PacketConn) batchConn {
	if batchSize <= 1 {
		return nil
	}
	udpConn, ok := c.(*net.UDPConn)
	if !ok {
		return nil
	}
	addr, ok := udpConn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return nil
	}
	if addr.IP.To4() != nil {
		return ipv4.NewPacketConn(udpConn)
	}
	return ipv6.NewPacketConn(udpConn)
}

package ingress

import (
	"net"
)

// A UDPTransport sends packets on a net.PacketConn.
// Usually this is the same connection the Listener reads from.
type UDPTransport struct {
	conn net.PacketConn
}

var _ Transport = &UDPTransport{}

// NewUDPTransport creates a new UDPTransport.
func NewUDPTransport(conn net.PacketConn) *UDPTransport {
	return &UDPTransport{conn: conn}
}

func (t *UDPTransport) Send(addr net.Addr, b []byte) error {
	_, err := t.conn.WriteTo(b, addr)
	return err
}

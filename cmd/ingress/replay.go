package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync/atomic"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/quic-go/ingress"
	"github.com/quic-go/ingress/internal/protocol"
)

type replayStats struct {
	Packets     int
	Datagrams   int
	NotUDP      int
	InvalidSize int
	Dispatched  int
	Timeouts    int
}

// discardTransport counts the packets the workers send, and discards them.
type discardTransport struct {
	packets atomic.Int64
	bytes   atomic.Int64
}

var _ ingress.Transport = &discardTransport{}

func (t *discardTransport) Send(_ net.Addr, b []byte) error {
	t.packets.Add(1)
	t.bytes.Add(int64(len(b)))
	return nil
}

// replay reads a pcap capture and dispatches the UDP payloads it contains, in capture order.
// The source address of every datagram is taken from the IP and UDP headers.
func replay(r io.Reader, dispatcher ingress.PacketDispatcher, logger *slog.Logger) (replayStats, error) {
	var stats replayStats
	reader, err := pcapgo.NewReader(r)
	if err != nil {
		return stats, fmt.Errorf("reading pcap header: %w", err)
	}
	for {
		data, _, err := reader.ReadPacketData()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			return stats, fmt.Errorf("reading packet %d: %w", stats.Packets+1, err)
		}
		stats.Packets++

		addr, payload, ok := udpDatagram(gopacket.NewPacket(data, reader.LinkType(), gopacket.NoCopy))
		if !ok {
			stats.NotUDP++
			continue
		}
		stats.Datagrams++
		if len(payload) < protocol.MinPacketSize || len(payload) > protocol.MaxPacketSize {
			stats.InvalidSize++
			continue
		}
		if err := dispatcher.Dispatch(addr, payload); err != nil {
			if !errors.Is(err, ingress.ErrDispatchTimeout) {
				return stats, err
			}
			logger.Debug("dispatching packet timed out", "packet", stats.Packets, "remote", addr)
			stats.Timeouts++
			continue
		}
		stats.Dispatched++
	}
}

func udpDatagram(packet gopacket.Packet) (*net.UDPAddr, []byte, bool) {
	udp, ok := packet.Layer(layers.LayerTypeUDP).(*layers.UDP)
	if !ok {
		return nil, nil, false
	}
	var ip net.IP
	switch network := packet.NetworkLayer().(type) {
	case *layers.IPv4:
		ip = network.SrcIP
	case *layers.IPv6:
		ip = network.SrcIP
	default:
		return nil, nil, false
	}
	return &net.UDPAddr{IP: ip, Port: int(udp.SrcPort)}, udp.Payload, true
}

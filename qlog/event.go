package qlog

import (
	"net"
	"time"

	"github.com/quic-go/ingress/logging"

	"github.com/francoispqt/gojay"
)

type eventDetails interface {
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", float64(e.RelativeTime.Nanoseconds())/1e6)
	enc.StringKey("name", "ingress:"+e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

// remoteAddr encodes the address of the peer
type remoteAddr struct {
	Addr net.Addr
}

func (a remoteAddr) IsNil() bool { return a.Addr == nil }
func (a remoteAddr) MarshalJSONObject(enc *gojay.Encoder) {
	udpAddr, ok := a.Addr.(*net.UDPAddr)
	if !ok {
		enc.StringKey("addr", a.Addr.String())
		return
	}
	// If ip is not an IPv4 address, To4 returns nil.
	if udpAddr.IP.To4() == nil {
		enc.StringKey("ip_version", "ipv6")
	} else {
		enc.StringKey("ip_version", "ipv4")
	}
	enc.StringKey("ip", udpAddr.IP.String())
	enc.IntKey("port", udpAddr.Port)
}

type versions []logging.Version

func (v versions) IsNil() bool { return false }
func (v versions) MarshalJSONArray(enc *gojay.Encoder) {
	for _, e := range v {
		enc.AddString(versionNumber(e).String())
	}
}

type versionNumber logging.Version

func (v versionNumber) String() string {
	return logging.Version(v).String()
}

type eventVersionNegotiationSent struct {
	Remote     net.Addr
	DestConnID logging.ArbitraryLenConnectionID
	SrcConnID  logging.ArbitraryLenConnectionID
	Versions   []logging.Version
}

func (e eventVersionNegotiationSent) Name() string { return "version_negotiation_sent" }
func (e eventVersionNegotiationSent) IsNil() bool  { return false }

func (e eventVersionNegotiationSent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("remote", remoteAddr{e.Remote})
	enc.StringKey("dcid", e.DestConnID.String())
	enc.StringKey("scid", e.SrcConnID.String())
	enc.ArrayKey("supported_versions", versions(e.Versions))
}

type eventRetrySent struct {
	Remote         net.Addr
	OrigDestConnID logging.ConnectionID
	RetrySrcConnID logging.ConnectionID
	Version        logging.Version
}

func (e eventRetrySent) Name() string { return "retry_sent" }
func (e eventRetrySent) IsNil() bool  { return false }

func (e eventRetrySent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("remote", remoteAddr{e.Remote})
	enc.StringKey("original_dcid", e.OrigDestConnID.String())
	enc.StringKey("retry_scid", e.RetrySrcConnID.String())
	enc.StringKey("quic_version", versionNumber(e.Version).String())
}

type eventPacketForwarded struct {
	Remote     net.Addr
	PacketType logging.PacketType
	DestConnID logging.ConnectionID
	Size       logging.ByteCount
}

func (e eventPacketForwarded) Name() string { return "packet_forwarded" }
func (e eventPacketForwarded) IsNil() bool  { return false }

func (e eventPacketForwarded) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("remote", remoteAddr{e.Remote})
	enc.StringKey("packet_type", packetType(e.PacketType))
	enc.StringKey("dcid", e.DestConnID.String())
	enc.Int64Key("packet_size", int64(e.Size))
}

type eventConnectionCreated struct {
	Remote         net.Addr
	SrcConnID      logging.ConnectionID
	DestConnID     logging.ConnectionID
	OrigDestConnID logging.ConnectionID
}

func (e eventConnectionCreated) Name() string { return "connection_created" }
func (e eventConnectionCreated) IsNil() bool  { return false }

func (e eventConnectionCreated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("remote", remoteAddr{e.Remote})
	enc.StringKey("scid", e.SrcConnID.String())
	enc.StringKey("dcid", e.DestConnID.String())
	enc.StringKey("original_dcid", e.OrigDestConnID.String())
}

type eventPacketDropped struct {
	Remote     net.Addr
	PacketType logging.PacketType
	Size       logging.ByteCount
	Trigger    logging.PacketDropReason
}

func (e eventPacketDropped) Name() string { return "packet_dropped" }
func (e eventPacketDropped) IsNil() bool  { return false }

func (e eventPacketDropped) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("remote", remoteAddr{e.Remote})
	enc.StringKey("packet_type", packetType(e.PacketType))
	enc.Int64Key("packet_size", int64(e.Size))
	enc.StringKey("trigger", e.Trigger.String())
}

type eventDispatchTimedOut struct {
	Remote net.Addr
	Size   logging.ByteCount
}

func (e eventDispatchTimedOut) Name() string { return "dispatch_timed_out" }
func (e eventDispatchTimedOut) IsNil() bool  { return false }

func (e eventDispatchTimedOut) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("remote", remoteAddr{e.Remote})
	enc.Int64Key("packet_size", int64(e.Size))
}

func packetType(t logging.PacketType) string {
	//nolint:exhaustive
	switch t {
	case logging.PacketTypeInitial:
		return "initial"
	case logging.PacketTypeHandshake:
		return "handshake"
	case logging.PacketType0RTT:
		return "0RTT"
	case logging.PacketTypeRetry:
		return "retry"
	case logging.PacketTypeVersionNegotiation:
		return "version_negotiation"
	case logging.PacketType1RTT:
		return "1RTT"
	default:
		return "unknown"
	}
}

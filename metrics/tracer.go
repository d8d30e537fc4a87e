// Package metrics exports triage outcomes as Prometheus metrics.
package metrics

import (
	"errors"
	"net"
	"sync"

	"github.com/quic-go/ingress/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "quic_ingress"

func getIPVersion(addr net.Addr) string {
	udpAddr, ok := addr.(*net.UDPAddr)
	if !ok {
		return ""
	}
	if udpAddr.IP.To4() != nil {
		return "ipv4"
	}
	return "ipv6"
}

var (
	connsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_connections_rejected_total",
			Help:      "Connection attempts answered statelessly",
		},
		[]string{"ip_version", "reason"},
	)
	connsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_connections_created_total",
			Help:      "Connections created after address validation",
		},
		[]string{"ip_version"},
	)
	packetsForwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_received_packets_forwarded_total",
			Help:      "packets forwarded to the connection registry",
		},
		[]string{"ip_version", "packet_type"},
	)
	packetsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "server_received_packets_dropped_total",
			Help:      "packets dropped",
		},
		[]string{"ip_version", "reason"},
	)
	dispatchTimeouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "dispatch_timeouts_total",
			Help:      "packets not acknowledged by a worker in time",
		},
		[]string{"ip_version"},
	)
)

const capacity = 4

// The stringPool is used to avoid allocations when passing labels to Prometheus.
var stringPool = sync.Pool{New: func() any {
	s := make([]string, 0, capacity)
	return &s
}}

func getStringSlice() *[]string {
	s := stringPool.Get().(*[]string)
	*s = (*s)[:0]
	return s
}

func putStringSlice(s *[]string) {
	stringPool.Put(s)
}

// NewTracer creates a new tracer using the default Prometheus registerer.
func NewTracer() *logging.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
// The collectors are shared, so multiple tracers can be created for the same registerer.
func NewTracerWithRegisterer(registerer prometheus.Registerer) *logging.Tracer {
	for _, c := range [...]prometheus.Collector{
		connsRejected,
		connsCreated,
		packetsForwarded,
		packetsDropped,
		dispatchTimeouts,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	return &logging.Tracer{
		SentVersionNegotiationPacket: func(addr net.Addr, _, _ logging.ArbitraryLenConnectionID, _ []logging.Version) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, getIPVersion(addr), "version_negotiation")
			connsRejected.WithLabelValues(*tags...).Inc()
		},
		SentRetry: func(addr net.Addr, _, _ logging.ConnectionID, _ logging.Version) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, getIPVersion(addr), "retry")
			connsRejected.WithLabelValues(*tags...).Inc()
		},
		ForwardedPacket: func(addr net.Addr, pt logging.PacketType, _ logging.ConnectionID, _ logging.ByteCount) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, getIPVersion(addr), packetType(pt))
			packetsForwarded.WithLabelValues(*tags...).Inc()
		},
		CreatedConnection: func(addr net.Addr, _, _, _ logging.ConnectionID) {
			connsCreated.WithLabelValues(getIPVersion(addr)).Inc()
		},
		DroppedPacket: func(addr net.Addr, _ logging.PacketType, _ logging.ByteCount, reason logging.PacketDropReason) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, getIPVersion(addr), reason.String())
			packetsDropped.WithLabelValues(*tags...).Inc()
		},
		DispatchTimedOut: func(addr net.Addr, _ logging.ByteCount) {
			dispatchTimeouts.WithLabelValues(getIPVersion(addr)).Inc()
		},
	}
}

func packetType(t logging.PacketType) string {
	//nolint:exhaustive // Only a few packet types are forwarded.
	switch t {
	case logging.PacketTypeInitial:
		return "initial"
	case logging.PacketTypeHandshake:
		return "handshake"
	case logging.PacketType0RTT:
		return "0rtt"
	case logging.PacketTypeRetry:
		return "retry"
	case logging.PacketType1RTT:
		return "1rtt"
	default:
		return "unknown"
	}
}

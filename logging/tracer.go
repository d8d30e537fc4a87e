package logging

import "net"

// A Tracer records events that happen while packets are triaged.
// All callbacks may be nil, and are called concurrently from multiple workers.
type Tracer struct {
	SentVersionNegotiationPacket func(dest net.Addr, destConnID, srcConnID ArbitraryLenConnectionID, versions []Version)
	SentRetry                    func(dest net.Addr, origDestConnID, retrySrcConnID ConnectionID, version Version)
	ForwardedPacket              func(remote net.Addr, packetType PacketType, destConnID ConnectionID, size ByteCount)
	CreatedConnection            func(remote net.Addr, srcConnID, destConnID, origDestConnID ConnectionID)
	DroppedPacket                func(remote net.Addr, packetType PacketType, size ByteCount, reason PacketDropReason)
	DispatchTimedOut             func(remote net.Addr, size ByteCount)
	Close                        func()
}

// NewMultiplexedTracer creates a new tracer that multiplexes events to multiple tracers.
func NewMultiplexedTracer(tracers ...*Tracer) *Tracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &Tracer{
		SentVersionNegotiationPacket: func(dest net.Addr, destConnID, srcConnID ArbitraryLenConnectionID, versions []Version) {
			for _, t := range tracers {
				if t.SentVersionNegotiationPacket != nil {
					t.SentVersionNegotiationPacket(dest, destConnID, srcConnID, versions)
				}
			}
		},
		SentRetry: func(dest net.Addr, origDestConnID, retrySrcConnID ConnectionID, version Version) {
			for _, t := range tracers {
				if t.SentRetry != nil {
					t.SentRetry(dest, origDestConnID, retrySrcConnID, version)
				}
			}
		},
		ForwardedPacket: func(remote net.Addr, packetType PacketType, destConnID ConnectionID, size ByteCount) {
			for _, t := range tracers {
				if t.ForwardedPacket != nil {
					t.ForwardedPacket(remote, packetType, destConnID, size)
				}
			}
		},
		CreatedConnection: func(remote net.Addr, srcConnID, destConnID, origDestConnID ConnectionID) {
			for _, t := range tracers {
				if t.CreatedConnection != nil {
					t.CreatedConnection(remote, srcConnID, destConnID, origDestConnID)
				}
			}
		},
		DroppedPacket: func(remote net.Addr, packetType PacketType, size ByteCount, reason PacketDropReason) {
			for _, t := range tracers {
				if t.DroppedPacket != nil {
					t.DroppedPacket(remote, packetType, size, reason)
				}
			}
		},
		DispatchTimedOut: func(remote net.Addr, size ByteCount) {
			for _, t := range tracers {
				if t.DispatchTimedOut != nil {
					t.DispatchTimedOut(remote, size)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}

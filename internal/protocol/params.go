package protocol

import "time"

// MaxConnIDLen is the maximum length of the connection ID
const MaxConnIDLen = 20

// AllocatedConnIDLen is the length of every connection ID this server hands out.
// Short header packets are parsed with this length.
const AllocatedConnIDLen = MaxConnIDLen

// MinPacketSize is the size of the smallest datagram that is passed on for triage.
const MinPacketSize = 4

// MaxPacketSize is the size of the largest datagram that is passed on for triage.
const MaxPacketSize = 1350

// MaxPacketBufferSize maximum packet size of any QUIC packet, based on
// ethernet's max size, minus the IP and UDP headers. IPv6 has a 40 byte header,
// UDP adds an additional 8 bytes.  This is a total overhead of 48 bytes.
// Ethernet's max packet size is 1500 bytes,  1500 - 48 = 1452.
const MaxPacketBufferSize = 1452

// DefaultDispatchTimeout is the time a caller waits for a worker to acknowledge a packet.
const DefaultDispatchTimeout = 50 * time.Millisecond

// RetryTokenValidity is the duration that a retry token is considered valid
const RetryTokenValidity = 10 * time.Second

// ClosedConnDeleteTimeout is the time a removed connection ID is kept as a tombstone,
// so that late packets for it are not mistaken for packets of a new connection.
const ClosedConnDeleteTimeout = 5 * time.Second

// DesiredReceiveBufferSize is the kernel UDP receive buffer size that we'd like to use.
const DesiredReceiveBufferSize = (1 << 20) * 7 // 7 MB

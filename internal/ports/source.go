package ports

import "github.com/bft-labs/slidingwindow/internal/domain"

// Source supplies the packets the sender transmits.
// Implementations must be deterministic and side-effect free.
type Source interface {
	// NextPacket returns the packet for the given stream index.
	NextPacket(index int) domain.Packet
}

// Sink accepts packets the receiver delivered in order.
type Sink interface {
	Deliver(p domain.Packet)
}

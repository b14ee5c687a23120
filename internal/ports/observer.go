package ports

import "github.com/bft-labs/slidingwindow/internal/domain"

// Observer is notified of every protocol step. It is a side channel only:
// the sender and receiver never depend on what an observer does.
type Observer interface {
	// Sender side
	PacketReady(p domain.Packet)
	FrameSent(f domain.Frame)
	AckReceived(seq int)

	// Receiver side
	FrameReceived(f domain.Frame)
	PacketDelivered(f domain.Frame)
	FrameDiscarded(f domain.Frame, expected int)
	AckSent(seq int)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) PacketReady(domain.Packet)        {}
func (NopObserver) FrameSent(domain.Frame)           {}
func (NopObserver) AckReceived(int)                  {}
func (NopObserver) FrameReceived(domain.Frame)       {}
func (NopObserver) PacketDelivered(domain.Frame)     {}
func (NopObserver) FrameDiscarded(domain.Frame, int) {}
func (NopObserver) AckSent(int)                      {}

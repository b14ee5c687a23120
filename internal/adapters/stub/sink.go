package stub

import (
	"sync"

	"github.com/bft-labs/slidingwindow/internal/domain"
)

// RecordingSink keeps every delivered packet in order.
type RecordingSink struct {
	mu      sync.Mutex
	packets []domain.Packet
}

// NewRecordingSink creates an empty sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// Deliver implements ports.Sink.
func (s *RecordingSink) Deliver(p domain.Packet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packets = append(s.packets, p)
}

// Packets returns a copy of the delivered packets.
func (s *RecordingSink) Packets() []domain.Packet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Packet(nil), s.packets...)
}

// Len returns the number of delivered packets.
func (s *RecordingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.packets)
}

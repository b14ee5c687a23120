package stub

import (
	"context"
	"sync"

	"github.com/bft-labs/slidingwindow/internal/domain"
)

// SimulatedChannel is the two-sided channel of the original simulation.
//
// The send path only records what the sender emitted. The receive path
// does not replay those frames: the index-th arriving frame is synthesized
// as seq = index mod modulus, data = index.
type SimulatedChannel struct {
	space domain.SequenceSpace

	mu      sync.Mutex
	emitted []domain.Frame
}

// NewSimulatedChannel creates a channel over the given sequence space.
func NewSimulatedChannel(space domain.SequenceSpace) *SimulatedChannel {
	return &SimulatedChannel{space: space}
}

// Emit implements ports.FrameEmitter. It never fails.
func (c *SimulatedChannel) Emit(_ context.Context, f domain.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emitted = append(c.emitted, f)
	return nil
}

// Receive implements ports.FrameReceiver.
func (c *SimulatedChannel) Receive(_ context.Context, index int) (domain.Frame, error) {
	return domain.NewFrame(c.space.At(index), domain.Packet{Data: index}), nil
}

// Emitted returns a copy of the frames the sender emitted.
func (c *SimulatedChannel) Emitted() []domain.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Frame(nil), c.emitted...)
}

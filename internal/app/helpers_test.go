package app

import (
	"context"
	"sync"

	"github.com/bft-labs/slidingwindow/internal/domain"
	"github.com/bft-labs/slidingwindow/internal/ports"
)

// funcEmitter adapts a function to ports.FrameEmitter.
type funcEmitter func(ctx context.Context, f domain.Frame) error

func (fn funcEmitter) Emit(ctx context.Context, f domain.Frame) error { return fn(ctx, f) }

// scriptedChannel replays a fixed list of frames on the receive path.
type scriptedChannel struct {
	frames []domain.Frame
}

func (c scriptedChannel) Receive(_ context.Context, index int) (domain.Frame, error) {
	return c.frames[index], nil
}

// eventObserver records the event stream for assertions.
type eventObserver struct {
	ports.NopObserver

	mu        sync.Mutex
	sent      []int
	acksRecv  []int
	delivered []int
	discarded []int
	acksSent  []int
}

func (o *eventObserver) FrameSent(f domain.Frame) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, f.Seq)
}

func (o *eventObserver) AckReceived(seq int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.acksRecv = append(o.acksRecv, seq)
}

func (o *eventObserver) PacketDelivered(f domain.Frame) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.delivered = append(o.delivered, f.Seq)
}

func (o *eventObserver) FrameDiscarded(f domain.Frame, _ int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.discarded = append(o.discarded, f.Seq)
}

func (o *eventObserver) AckSent(seq int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.acksSent = append(o.acksSent, seq)
}

func seqs(frames []domain.Frame) []int {
	out := make([]int, len(frames))
	for i, f := range frames {
		out[i] = f.Seq
	}
	return out
}

func mustSpace(bits int) domain.SequenceSpace {
	s, err := domain.NewSequenceSpace(bits)
	if err != nil {
		panic(err)
	}
	return s
}

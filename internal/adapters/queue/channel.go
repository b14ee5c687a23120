// Package queue provides a bounded FIFO channel that carries the frames a
// sender actually emits to a concurrently running receiver.
package queue

import (
	"context"
	"sync"

	"github.com/bft-labs/slidingwindow/internal/domain"
)

// Channel is a bounded, ordered, lossless frame queue.
// Emit blocks while the queue is full; Receive blocks while it is empty.
type Channel struct {
	frames chan domain.Frame

	closeOnce sync.Once
	closed    chan struct{}
}

// NewChannel creates a channel buffering up to capacity frames.
// A capacity below one is treated as one.
func NewChannel(capacity int) *Channel {
	if capacity < 1 {
		capacity = 1
	}
	return &Channel{
		frames: make(chan domain.Frame, capacity),
		closed: make(chan struct{}),
	}
}

// Emit implements ports.FrameEmitter.
func (c *Channel) Emit(ctx context.Context, f domain.Frame) error {
	select {
	case <-c.closed:
		return domain.ErrChannelClosed
	default:
	}

	select {
	case c.frames <- f:
		return nil
	case <-c.closed:
		return domain.ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive implements ports.FrameReceiver. Frames come back in emission
// order; index is not used to pick a frame.
func (c *Channel) Receive(ctx context.Context, _ int) (domain.Frame, error) {
	select {
	case f := <-c.frames:
		return f, nil
	case <-ctx.Done():
		return domain.Frame{}, ctx.Err()
	case <-c.closed:
		// Frames emitted before Close are still delivered.
		select {
		case f := <-c.frames:
			return f, nil
		default:
			return domain.Frame{}, domain.ErrChannelClosed
		}
	}
}

// Close stops further emissions. It is safe to call more than once.
func (c *Channel) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

// Len returns the number of frames waiting to be received.
func (c *Channel) Len() int {
	return len(c.frames)
}

// Cap returns the queue capacity.
func (c *Channel) Cap() int {
	return cap(c.frames)
}

package ports

import (
	"context"

	"github.com/bft-labs/slidingwindow/internal/domain"
)

// FrameEmitter is the send path of the channel.
type FrameEmitter interface {
	// Emit hands one frame to the channel. Emission is ordered: frames
	// leave in the order Emit is called.
	Emit(ctx context.Context, f domain.Frame) error
}

// FrameReceiver is the receive path of the channel.
type FrameReceiver interface {
	// Receive returns the index-th frame arriving at the receiver.
	Receive(ctx context.Context, index int) (domain.Frame, error)
}

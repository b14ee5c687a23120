package app

import (
	"fmt"

	"github.com/bft-labs/slidingwindow/internal/domain"
)

// Window is the sender's FIFO of in-flight frames, bounded by the
// sequence space's window capacity.
type Window struct {
	frames   []domain.Frame
	capacity int
}

// NewWindow creates an empty window holding at most capacity frames.
func NewWindow(capacity int) *Window {
	return &Window{
		frames:   make([]domain.Frame, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a frame as the newest in-flight frame.
func (w *Window) Push(f domain.Frame) error {
	if len(w.frames) >= w.capacity {
		return fmt.Errorf("%w: push seq %d with %d/%d in flight", domain.ErrWindowFull, f.Seq, len(w.frames), w.capacity)
	}
	w.frames = append(w.frames, f)
	return nil
}

// PopOldest removes and returns the oldest in-flight frame.
// The second result is false when the window is empty.
func (w *Window) PopOldest() (domain.Frame, bool) {
	if len(w.frames) == 0 {
		return domain.Frame{}, false
	}
	f := w.frames[0]
	w.frames = w.frames[1:]
	return f, true
}

// Len returns the number of in-flight frames.
func (w *Window) Len() int {
	return len(w.frames)
}

// Capacity returns the maximum number of in-flight frames.
func (w *Window) Capacity() int {
	return w.capacity
}

// Full returns true if no more frames may be pushed.
func (w *Window) Full() bool {
	return len(w.frames) >= w.capacity
}

// Empty returns true if nothing is in flight.
func (w *Window) Empty() bool {
	return len(w.frames) == 0
}

// Reset drops every in-flight frame.
func (w *Window) Reset() {
	w.frames = w.frames[:0]
}

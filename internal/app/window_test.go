package app

import (
	"errors"
	"testing"

	"github.com/bft-labs/slidingwindow/internal/domain"
)

func TestWindow_FIFO(t *testing.T) {
	w := NewWindow(3)

	for i := 0; i < 3; i++ {
		if err := w.Push(domain.NewFrame(i, domain.Packet{Data: i})); err != nil {
			t.Fatalf("Push(%d) error = %v", i, err)
		}
	}
	if !w.Full() {
		t.Error("Full() = false after 3 pushes into capacity 3")
	}

	for i := 0; i < 3; i++ {
		f, ok := w.PopOldest()
		if !ok {
			t.Fatalf("PopOldest() #%d returned !ok", i)
		}
		if f.Seq != i {
			t.Errorf("PopOldest() #%d seq = %d, want %d", i, f.Seq, i)
		}
	}
	if !w.Empty() {
		t.Errorf("Len() = %d after draining, want 0", w.Len())
	}
}

func TestWindow_PushFull(t *testing.T) {
	w := NewWindow(1)
	if err := w.Push(domain.NewFrame(0, domain.Packet{})); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	err := w.Push(domain.NewFrame(1, domain.Packet{}))
	if !errors.Is(err, domain.ErrWindowFull) {
		t.Errorf("Push() on full window error = %v, want ErrWindowFull", err)
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, want 1", w.Len())
	}
}

func TestWindow_PopEmpty(t *testing.T) {
	w := NewWindow(2)
	if _, ok := w.PopOldest(); ok {
		t.Error("PopOldest() on empty window returned ok")
	}
}

func TestWindow_Reset(t *testing.T) {
	w := NewWindow(2)
	_ = w.Push(domain.NewFrame(0, domain.Packet{}))
	w.Reset()

	if !w.Empty() {
		t.Errorf("Len() = %d after Reset, want 0", w.Len())
	}
	if w.Capacity() != 2 {
		t.Errorf("Capacity() = %d, want 2", w.Capacity())
	}
}

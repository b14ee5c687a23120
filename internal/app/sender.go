package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/slidingwindow/internal/domain"
	"github.com/bft-labs/slidingwindow/internal/ports"
)

// SenderReport summarizes one sender run.
type SenderReport struct {
	// Frames lists every frame emitted, in emission order.
	Frames []domain.Frame

	// Acked lists the sequence numbers retired from the window, in order.
	Acked []int

	// LastAck is the most recently acknowledged sequence number, or -1.
	LastAck int

	// PeakWindow is the largest window occupancy observed.
	PeakWindow int

	// Pending is the number of frames still in flight when the run ended.
	Pending int
}

// Sender numbers packets from a source, emits them as frames and tracks
// them in a bounded window.
//
// Acknowledgments are simulated: whenever the window saturates, or the
// stream ends, the oldest in-flight frame is retired as acknowledged. No
// message from the receiver is involved and nothing is ever retransmitted.
type Sender struct {
	space    domain.SequenceSpace
	source   ports.Source
	emitter  ports.FrameEmitter
	observer ports.Observer

	window  *Window
	nextSeq int
	lastAck int
}

// NewSender creates a sender. A nil observer is replaced by a no-op.
func NewSender(space domain.SequenceSpace, source ports.Source, emitter ports.FrameEmitter, observer ports.Observer) *Sender {
	if observer == nil {
		observer = ports.NopObserver{}
	}
	s := &Sender{
		space:    space,
		source:   source,
		emitter:  emitter,
		observer: observer,
		window:   NewWindow(space.WindowCapacity()),
	}
	s.reset()
	return s
}

func (s *Sender) reset() {
	s.window.Reset()
	s.nextSeq = 0
	s.lastAck = -1
}

// Run transmits totalPackets packets in strict order.
func (s *Sender) Run(ctx context.Context, totalPackets int) (SenderReport, error) {
	if totalPackets < 0 {
		return SenderReport{LastAck: -1}, fmt.Errorf("%w: %d", domain.ErrNegativePacketCount, totalPackets)
	}

	s.reset()
	report := SenderReport{
		Frames: make([]domain.Frame, 0, totalPackets),
		Acked:  make([]int, 0, totalPackets),
	}

	for i := 0; i < totalPackets; i++ {
		if err := ctx.Err(); err != nil {
			return s.finish(report), err
		}

		p := s.source.NextPacket(i)
		s.observer.PacketReady(p)

		f := domain.NewFrame(s.nextSeq, p)
		if err := s.emitter.Emit(ctx, f); err != nil {
			return s.finish(report), fmt.Errorf("emit seq %d: %w", f.Seq, err)
		}
		s.observer.FrameSent(f)
		report.Frames = append(report.Frames, f)

		if err := s.window.Push(f); err != nil {
			return s.finish(report), err
		}
		if s.window.Len() > report.PeakWindow {
			report.PeakWindow = s.window.Len()
		}

		s.nextSeq = s.space.Next(s.nextSeq)

		if s.window.Full() || i == totalPackets-1 {
			acked, _ := s.window.PopOldest()
			s.lastAck = acked.Seq
			report.Acked = append(report.Acked, acked.Seq)
			s.observer.AckReceived(acked.Seq)
		}
	}

	return s.finish(report), nil
}

func (s *Sender) finish(r SenderReport) SenderReport {
	r.LastAck = s.lastAck
	r.Pending = s.window.Len()
	return r
}

// NextSeq returns the sequence number the next frame will carry.
func (s *Sender) NextSeq() int {
	return s.nextSeq
}

// LastAck returns the most recently acknowledged sequence number, or -1.
func (s *Sender) LastAck() int {
	return s.lastAck
}

// InFlight returns the current window occupancy.
func (s *Sender) InFlight() int {
	return s.window.Len()
}

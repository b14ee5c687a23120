package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/slidingwindow/internal/domain"
	"github.com/bft-labs/slidingwindow/internal/ports"
)

// ReceiverReport summarizes one receiver run.
type ReceiverReport struct {
	// Delivered lists the packets handed to the sink, in order.
	Delivered []domain.Packet

	// Acks lists the acknowledgment emitted after each received frame.
	Acks []int

	Accepted  int
	Discarded int

	// ExpectedSeq is the cursor value when the run ended.
	ExpectedSeq int
}

// Receiver accepts frames strictly in order. Its only state is the
// expected-sequence cursor, which starts at 0 and advances by one
// (mod modulus) per accepted frame.
type Receiver struct {
	space    domain.SequenceSpace
	channel  ports.FrameReceiver
	sink     ports.Sink
	observer ports.Observer

	expectedSeq int
}

// NewReceiver creates a receiver. A nil observer is replaced by a no-op.
func NewReceiver(space domain.SequenceSpace, channel ports.FrameReceiver, sink ports.Sink, observer ports.Observer) *Receiver {
	if observer == nil {
		observer = ports.NopObserver{}
	}
	return &Receiver{
		space:    space,
		channel:  channel,
		sink:     sink,
		observer: observer,
	}
}

// Run consumes totalPackets frames from the channel.
func (r *Receiver) Run(ctx context.Context, totalPackets int) (ReceiverReport, error) {
	if totalPackets < 0 {
		return ReceiverReport{}, fmt.Errorf("%w: %d", domain.ErrNegativePacketCount, totalPackets)
	}

	r.expectedSeq = 0
	report := ReceiverReport{
		Delivered: make([]domain.Packet, 0, totalPackets),
		Acks:      make([]int, 0, totalPackets),
	}

	for i := 0; i < totalPackets; i++ {
		if err := ctx.Err(); err != nil {
			report.ExpectedSeq = r.expectedSeq
			return report, err
		}

		f, err := r.channel.Receive(ctx, i)
		if err != nil {
			report.ExpectedSeq = r.expectedSeq
			return report, fmt.Errorf("receive frame %d: %w", i, err)
		}

		accepted, ack := r.Accept(f)
		if accepted {
			report.Accepted++
			report.Delivered = append(report.Delivered, f.Packet)
		} else {
			report.Discarded++
		}
		report.Acks = append(report.Acks, ack)
	}

	report.ExpectedSeq = r.expectedSeq
	return report, nil
}

// Accept runs one step of the receiver state machine: f is delivered and
// the cursor advanced only if f.Seq equals the expected sequence number.
// It returns whether f was accepted and the acknowledgment emitted, which
// always names the last accepted sequence number.
func (r *Receiver) Accept(f domain.Frame) (bool, int) {
	r.observer.FrameReceived(f)

	accepted := f.Seq == r.expectedSeq
	if accepted {
		r.sink.Deliver(f.Packet)
		r.observer.PacketDelivered(f)
		r.expectedSeq = r.space.Next(r.expectedSeq)
	} else {
		r.observer.FrameDiscarded(f, r.expectedSeq)
	}

	ack := r.space.Prev(r.expectedSeq)
	r.observer.AckSent(ack)
	return accepted, ack
}

// ExpectedSeq returns the sequence number the receiver will accept next.
func (r *Receiver) ExpectedSeq() int {
	return r.expectedSeq
}

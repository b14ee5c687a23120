package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bft-labs/slidingwindow/internal/adapters/stub"
	"github.com/bft-labs/slidingwindow/internal/domain"
)

func TestReceiver_TwoBitFivePackets(t *testing.T) {
	space := domain.TwoBitSequenceSpace()
	sink := stub.NewRecordingSink()
	obs := &eventObserver{}

	report, err := NewReceiver(space, stub.NewSimulatedChannel(space), sink, obs).Run(context.Background(), 5)
	require.NoError(t, err)

	require.Equal(t, 5, report.Accepted)
	require.Zero(t, report.Discarded)
	require.Equal(t, []int{0, 1, 2, 3, 0}, obs.delivered)
	require.Equal(t, []int{0, 1, 2, 3, 0}, report.Acks)
	require.Equal(t, report.Acks, obs.acksSent)
	require.Equal(t, 1, report.ExpectedSeq)

	for i, p := range sink.Packets() {
		require.Equal(t, i, p.Data)
	}
}

func TestReceiver_DeterministicChannelAcceptsEverything(t *testing.T) {
	for bits := 1; bits <= 6; bits++ {
		space := mustSpace(bits)
		for _, total := range []int{0, 1, space.Modulus() - 1, space.Modulus(), 2*space.Modulus() + 3, 100} {
			sink := stub.NewRecordingSink()
			report, err := NewReceiver(space, stub.NewSimulatedChannel(space), sink, nil).Run(context.Background(), total)
			require.NoError(t, err)

			require.Equal(t, total, report.Accepted, "bits=%d total=%d", bits, total)
			require.Zero(t, report.Discarded)
			require.Equal(t, total, sink.Len())
			for i, ack := range report.Acks {
				require.Equal(t, i%space.Modulus(), ack)
			}
			require.Equal(t, total%space.Modulus(), report.ExpectedSeq)
		}
	}
}

func TestReceiver_ZeroPackets(t *testing.T) {
	space := domain.TwoBitSequenceSpace()
	obs := &eventObserver{}

	report, err := NewReceiver(space, stub.NewSimulatedChannel(space), stub.NewRecordingSink(), obs).Run(context.Background(), 0)
	require.NoError(t, err)

	require.Empty(t, report.Acks)
	require.Empty(t, obs.acksSent)
	require.Zero(t, report.ExpectedSeq)
}

func TestReceiver_DiscardsOutOfOrder(t *testing.T) {
	space := domain.TwoBitSequenceSpace()
	ch := scriptedChannel{frames: []domain.Frame{
		domain.NewFrame(0, domain.Packet{Data: 10}),
		domain.NewFrame(2, domain.Packet{Data: 12}),
		domain.NewFrame(1, domain.Packet{Data: 11}),
		domain.NewFrame(2, domain.Packet{Data: 12}),
	}}
	sink := stub.NewRecordingSink()
	obs := &eventObserver{}

	report, err := NewReceiver(space, ch, sink, obs).Run(context.Background(), 4)
	require.NoError(t, err)

	require.Equal(t, 3, report.Accepted)
	require.Equal(t, 1, report.Discarded)
	require.Equal(t, []int{2}, obs.discarded)
	// The ack after a discard repeats the last accepted sequence number.
	require.Equal(t, []int{0, 0, 1, 2}, report.Acks)
	require.Equal(t, []domain.Packet{{Data: 10}, {Data: 11}, {Data: 12}}, sink.Packets())
	require.Equal(t, 3, report.ExpectedSeq)
}

func TestReceiver_AckBeforeFirstAcceptWraps(t *testing.T) {
	space := mustSpace(3)
	r := NewReceiver(space, nil, stub.NewRecordingSink(), nil)

	accepted, ack := r.Accept(domain.NewFrame(5, domain.Packet{}))
	require.False(t, accepted)
	require.Equal(t, 7, ack)
	require.Zero(t, r.ExpectedSeq())
}

func TestReceiver_OutOfRangeSeqIsDiscarded(t *testing.T) {
	space := domain.TwoBitSequenceSpace()
	r := NewReceiver(space, nil, stub.NewRecordingSink(), nil)

	accepted, _ := r.Accept(domain.NewFrame(4, domain.Packet{}))
	require.False(t, accepted)
	accepted, _ = r.Accept(domain.NewFrame(-4, domain.Packet{}))
	require.False(t, accepted)
	require.Zero(t, r.ExpectedSeq())
}

func TestReceiver_CursorAdvancesByOnePerAccept(t *testing.T) {
	space := domain.TwoBitSequenceSpace()
	r := NewReceiver(space, nil, stub.NewRecordingSink(), nil)

	for i := 0; i < 10; i++ {
		before := r.ExpectedSeq()
		accepted, ack := r.Accept(domain.NewFrame(before, domain.Packet{Data: i}))
		require.True(t, accepted)
		require.Equal(t, space.Next(before), r.ExpectedSeq())
		require.Equal(t, before, ack)
	}
}

func TestReceiver_RejectsNegativeTotal(t *testing.T) {
	space := domain.TwoBitSequenceSpace()
	_, err := NewReceiver(space, stub.NewSimulatedChannel(space), stub.NewRecordingSink(), nil).Run(context.Background(), -2)
	require.ErrorIs(t, err, domain.ErrNegativePacketCount)
}

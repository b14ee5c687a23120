// Package narration turns protocol events into the layer-by-layer console
// narration of the classic sliding-window exercise, written as structured
// log events.
package narration

import (
	"github.com/bft-labs/slidingwindow/internal/domain"
	"github.com/bft-labs/slidingwindow/pkg/log"
)

// Narrator implements ports.Observer on top of a Logger.
type Narrator struct {
	logger log.Logger
}

// New creates a narrator writing to logger.
func New(logger log.Logger) *Narrator {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Narrator{logger: logger}
}

func (n *Narrator) PacketReady(p domain.Packet) {
	n.logger.Info("network layer: packet ready to send",
		log.String("layer", "network"),
		log.Int("data", p.Data),
	)
}

func (n *Narrator) FrameSent(f domain.Frame) {
	n.logger.Info("physical layer: frame sent",
		log.String("layer", "physical"),
		log.Int("seq", f.Seq),
		log.Int("data", f.Packet.Data),
	)
}

func (n *Narrator) AckReceived(seq int) {
	n.logger.Info("sender: ACK received",
		log.String("side", "sender"),
		log.Int("seq", seq),
	)
}

func (n *Narrator) FrameReceived(f domain.Frame) {
	n.logger.Info("physical layer: frame received",
		log.String("layer", "physical"),
		log.Int("seq", f.Seq),
		log.Int("data", f.Packet.Data),
	)
}

func (n *Narrator) PacketDelivered(f domain.Frame) {
	n.logger.Info("network layer: packet received",
		log.String("layer", "network"),
		log.Int("data", f.Packet.Data),
	)
	n.logger.Info("receiver: packet processed",
		log.String("side", "receiver"),
		log.Int("seq", f.Seq),
	)
}

func (n *Narrator) FrameDiscarded(f domain.Frame, expected int) {
	n.logger.Warn("receiver: out-of-order packet discarded",
		log.String("side", "receiver"),
		log.Int("seq", f.Seq),
		log.Int("expected", expected),
	)
}

func (n *Narrator) AckSent(seq int) {
	n.logger.Info("receiver: ACK sent",
		log.String("side", "receiver"),
		log.Int("seq", seq),
	)
}

package arq

import (
	"context"
	"fmt"

	"github.com/bft-labs/slidingwindow/internal/adapters/queue"
	"github.com/bft-labs/slidingwindow/internal/adapters/stub"
	"github.com/bft-labs/slidingwindow/internal/app"
	"github.com/bft-labs/slidingwindow/internal/domain"
)

// Mode selects how sender and receiver are connected.
type Mode = app.Mode

// Supported modes.
const (
	ModeSimulated = app.ModeSimulated
	ModeLinked    = app.ModeLinked
)

// Report summarizes a run.
type Report = app.Report

// Frame and Packet are the units exchanged by sender and receiver.
type (
	Frame  = domain.Frame
	Packet = domain.Packet
)

// Errors returned by New and Run. Check them with errors.Is.
var (
	ErrInvalidBitWidth     = domain.ErrInvalidBitWidth
	ErrNegativePacketCount = domain.ErrNegativePacketCount
	ErrInvalidConfig       = domain.ErrInvalidConfig
)

// Config describes one simulation.
type Config struct {
	// Packets is the number of packets to transmit (>= 0).
	Packets int

	// Bits is the sequence number width n for the generic variant.
	// Ignored when TwoBit is set.
	Bits int

	// TwoBit selects the fixed 2-bit variant: sequence numbers 0..3 and a
	// window of two frames.
	TwoBit bool

	// Mode defaults to ModeSimulated.
	Mode Mode
}

// Simulator runs sliding-window simulations. It is safe to call Run more
// than once; every run starts from sequence number 0.
type Simulator struct {
	config Config
	space  domain.SequenceSpace
	opts   options
}

// New validates cfg and creates a simulator.
func New(cfg Config, opts ...Option) (*Simulator, error) {
	if cfg.Packets < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrNegativePacketCount, cfg.Packets)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeSimulated
	}
	if _, err := app.ParseMode(string(cfg.Mode)); err != nil {
		return nil, err
	}

	var space domain.SequenceSpace
	if cfg.TwoBit {
		space = domain.TwoBitSequenceSpace()
	} else {
		s, err := domain.NewSequenceSpace(cfg.Bits)
		if err != nil {
			return nil, err
		}
		space = s
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = stub.IndexSource{}
	}

	return &Simulator{config: cfg, space: space, opts: o}, nil
}

// Modulus returns 2^n for the configured sequence space.
func (s *Simulator) Modulus() int { return s.space.Modulus() }

// WindowCapacity returns the sender window size.
func (s *Simulator) WindowCapacity() int { return s.space.WindowCapacity() }

// Run executes one simulation and returns its report.
func (s *Simulator) Run(ctx context.Context) (Report, error) {
	sink := s.opts.sink
	if sink == nil {
		sink = stub.NewRecordingSink()
	}

	sim := app.NewSimulation(
		app.SimulationConfig{
			TotalPackets: s.config.Packets,
			Space:        s.space,
			Mode:         s.config.Mode,
		},
		s.link(),
		s.opts.source,
		sink,
		s.opts.resolveObserver(),
		s.opts.logger,
	)
	return sim.Run(ctx)
}

func (s *Simulator) link() app.Link {
	if s.config.Mode == ModeLinked {
		ch := queue.NewChannel(s.space.WindowCapacity())
		return app.Link{Emitter: ch, Receiver: ch}
	}
	ch := stub.NewSimulatedChannel(s.space)
	return app.Link{Emitter: ch, Receiver: ch}
}

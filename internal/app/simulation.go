package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/slidingwindow/internal/domain"
	"github.com/bft-labs/slidingwindow/internal/ports"
	"github.com/bft-labs/slidingwindow/pkg/log"
)

// Mode selects how the sender and receiver are connected.
type Mode string

const (
	// ModeSimulated runs the sender to completion and then the receiver,
	// each against its own side of a simulated channel.
	ModeSimulated Mode = "simulated"

	// ModeLinked runs sender and receiver concurrently over one bounded
	// FIFO carrying the frames the sender actually emitted.
	ModeLinked Mode = "linked"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSimulated, ModeLinked:
		return Mode(s), nil
	case "":
		return ModeSimulated, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidConfig, s)
	}
}

// SimulationConfig contains configuration for one simulation run.
type SimulationConfig struct {
	TotalPackets int
	Space        domain.SequenceSpace
	Mode         Mode
}

// Validate rejects preconditions that must hold before any component runs.
func (c SimulationConfig) Validate() error {
	if c.TotalPackets < 0 {
		return fmt.Errorf("%w: %d", domain.ErrNegativePacketCount, c.TotalPackets)
	}
	if !c.Space.Valid() {
		return fmt.Errorf("%w: sequence space not initialized", domain.ErrInvalidBitWidth)
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	return nil
}

// Link is the channel between sender and receiver.
type Link struct {
	Emitter  ports.FrameEmitter
	Receiver ports.FrameReceiver
}

// Report summarizes a simulation run.
type Report struct {
	RunID    string
	Mode     Mode
	Space    domain.SequenceSpace
	Sender   SenderReport
	Receiver ReceiverReport
	Duration time.Duration
}

// Simulation wires a sender and a receiver to a link and runs them.
type Simulation struct {
	config   SimulationConfig
	link     Link
	source   ports.Source
	sink     ports.Sink
	observer ports.Observer
	logger   log.Logger
}

// NewSimulation creates a simulation with the given dependencies.
func NewSimulation(
	config SimulationConfig,
	link Link,
	source ports.Source,
	sink ports.Sink,
	observer ports.Observer,
	logger log.Logger,
) *Simulation {
	if config.Mode == "" {
		config.Mode = ModeSimulated
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Simulation{
		config:   config,
		link:     link,
		source:   source,
		sink:     sink,
		observer: observer,
		logger:   logger,
	}
}

// Run validates the configuration and executes one run.
func (s *Simulation) Run(ctx context.Context) (Report, error) {
	report := Report{
		RunID: uuid.NewString(),
		Mode:  s.config.Mode,
		Space: s.config.Space,
	}
	if err := s.config.Validate(); err != nil {
		return report, err
	}

	s.logger.Info("simulation started",
		log.String("run_id", report.RunID),
		log.String("mode", string(s.config.Mode)),
		log.Int("bits", s.config.Space.Bits()),
		log.Int("modulus", s.config.Space.Modulus()),
		log.Int("window", s.config.Space.WindowCapacity()),
		log.Int("packets", s.config.TotalPackets),
	)

	sender := NewSender(s.config.Space, s.source, s.link.Emitter, s.observer)
	receiver := NewReceiver(s.config.Space, s.link.Receiver, s.sink, s.observer)

	start := time.Now()
	var err error
	switch s.config.Mode {
	case ModeLinked:
		report.Sender, report.Receiver, err = s.runLinked(ctx, sender, receiver)
	default:
		report.Sender, report.Receiver, err = s.runSequential(ctx, sender, receiver)
	}
	report.Duration = time.Since(start)

	if err != nil {
		s.logger.Error("simulation failed",
			log.String("run_id", report.RunID),
			log.Err(err),
		)
		return report, err
	}

	s.logger.Info("simulation finished",
		log.String("run_id", report.RunID),
		log.Int("sent", len(report.Sender.Frames)),
		log.Ints("acked", report.Sender.Acked),
		log.Int("peak_window", report.Sender.PeakWindow),
		log.Int("accepted", report.Receiver.Accepted),
		log.Int("discarded", report.Receiver.Discarded),
		log.Duration("duration", report.Duration),
	)
	return report, nil
}

func (s *Simulation) runSequential(ctx context.Context, sender *Sender, receiver *Receiver) (SenderReport, ReceiverReport, error) {
	sr, err := sender.Run(ctx, s.config.TotalPackets)
	if err != nil {
		return sr, ReceiverReport{}, fmt.Errorf("sender: %w", err)
	}
	rr, err := receiver.Run(ctx, s.config.TotalPackets)
	if err != nil {
		return sr, rr, fmt.Errorf("receiver: %w", err)
	}
	return sr, rr, nil
}

func (s *Simulation) runLinked(ctx context.Context, sender *Sender, receiver *Receiver) (SenderReport, ReceiverReport, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg        sync.WaitGroup
		sr        SenderReport
		senderErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		sr, senderErr = sender.Run(ctx, s.config.TotalPackets)
		if senderErr != nil {
			cancel()
		}
		if c, ok := s.link.Emitter.(io.Closer); ok {
			if err := c.Close(); err != nil {
				s.logger.Warn("close link", log.Err(err))
			}
		}
	}()

	rr, receiverErr := receiver.Run(ctx, s.config.TotalPackets)
	if receiverErr != nil {
		cancel()
	}
	wg.Wait()

	if senderErr != nil {
		return sr, rr, fmt.Errorf("sender: %w", senderErr)
	}
	if receiverErr != nil {
		return sr, rr, fmt.Errorf("receiver: %w", receiverErr)
	}
	return sr, rr, nil
}

// ErrorKind classifies a run error for exit-status reporting.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrNegativePacketCount), errors.Is(err, domain.ErrInvalidBitWidth), errors.Is(err, domain.ErrInvalidConfig):
		return "precondition"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "runtime"
	}
}

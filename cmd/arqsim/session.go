package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bft-labs/slidingwindow/internal/app"
	"github.com/bft-labs/slidingwindow/internal/cliconfig"
	"github.com/bft-labs/slidingwindow/pkg/arq"
	"github.com/bft-labs/slidingwindow/pkg/log"
)

// session resolves configuration and runs simulations for one invocation.
type session struct {
	mu sync.Mutex

	flags    cliconfig.Config
	changed  map[string]bool
	cfgFile  string
	prompter *cliconfig.Prompter

	// answers keeps prompted values so that watch-mode reloads do not ask again.
	answers map[string]int

	out    io.Writer
	errOut io.Writer
}

// resolve layers defaults, file, environment, flags and prompts, then validates.
func (s *session) resolve() (cliconfig.Config, error) {
	cfg := cliconfig.DefaultConfig()

	if s.cfgFile != "" && cliconfig.FileExists(s.cfgFile) {
		fc, err := cliconfig.LoadFileConfig(s.cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, s.changed); err != nil {
			return cfg, err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, s.changed); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}

	s.applyFlags(&cfg)

	for key, v := range s.answers {
		switch {
		case key == cliconfig.KeyPackets && cfg.NeedsPackets():
			cfg.Packets = v
			cfg.MarkSet(key)
		case key == cliconfig.KeyBits && cfg.NeedsBits():
			cfg.Bits = v
			cfg.MarkSet(key)
		}
	}

	needPackets, needBits := cfg.NeedsPackets(), cfg.NeedsBits()
	if err := s.prompter.Resolve(&cfg); err != nil {
		return cfg, err
	}
	if needPackets {
		s.answers[cliconfig.KeyPackets] = cfg.Packets
	}
	if needBits {
		s.answers[cliconfig.KeyBits] = cfg.Bits
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s *session) applyFlags(cfg *cliconfig.Config) {
	f := s.flags
	if s.changed[cliconfig.KeyPackets] {
		cfg.Packets = f.Packets
		cfg.MarkSet(cliconfig.KeyPackets)
	}
	if s.changed[cliconfig.KeyBits] {
		cfg.Bits = f.Bits
		cfg.MarkSet(cliconfig.KeyBits)
	}
	if s.changed[cliconfig.KeyVariant] {
		cfg.Variant = f.Variant
	}
	if s.changed[cliconfig.KeyMode] {
		cfg.Mode = f.Mode
	}
	if s.changed[cliconfig.KeyLogLevel] {
		cfg.LogLevel = f.LogLevel
	}
	if s.changed[cliconfig.KeyLogFormat] {
		cfg.LogFormat = f.LogFormat
	}
	if s.changed[cliconfig.KeyQuiet] {
		cfg.Quiet = f.Quiet
	}
	cfg.Watch = f.Watch
}

// runOnce resolves the configuration and performs one simulation.
func (s *session) runOnce(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.resolve()
	if err != nil {
		return err
	}

	logger := log.NewZerologAdapter(s.errOut, cfg.LogFormat, cfg.Level())
	logger.Debug("configuration",
		log.Int("packets", cfg.Packets),
		log.Int("bits", cfg.Bits),
		log.String("variant", cfg.Variant),
		log.String("mode", cfg.Mode),
	)

	sim, err := arq.New(arq.Config{
		Packets: cfg.Packets,
		Bits:    cfg.Bits,
		TwoBit:  cfg.Variant == cliconfig.VariantTwoBit,
		Mode:    arq.Mode(cfg.Mode),
	}, s.simOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	bits := cfg.Bits
	if cfg.Variant == cliconfig.VariantTwoBit {
		bits = 2
	}
	fmt.Fprintf(s.out, "Starting %d-Bit Sliding Window Protocol simulation...\n", bits)

	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printSummary(s.out, report)
	return nil
}

func (s *session) simOptions(cfg cliconfig.Config, logger log.Logger) []arq.Option {
	opts := []arq.Option{arq.WithLogger(logger)}
	if !cfg.Quiet {
		opts = append(opts, arq.WithNarration())
	}
	return opts
}

// watch runs once and then again every time the config file changes.
func (s *session) watch(ctx context.Context) error {
	if s.cfgFile == "" {
		return fmt.Errorf("--watch needs a config file")
	}
	if !cliconfig.FileExists(s.cfgFile) {
		return fmt.Errorf("--watch: %s: %w", s.cfgFile, os.ErrNotExist)
	}

	if err := s.runOnce(ctx); err != nil {
		return err
	}

	logger := log.NewZerologAdapterWithLogger(cliconfig.Logger())
	w := cliconfig.NewWatcher(s.cfgFile, cliconfig.DefaultDebounce, logger)
	logger.Info("watching config file", log.String("path", s.cfgFile))

	err := w.Run(ctx, func() {
		if err := s.runOnce(ctx); err != nil {
			logger.Error("run failed", log.Err(err), log.String("kind", app.ErrorKind(err)))
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printSummary(w io.Writer, r arq.Report) {
	sent := make([]int, 0, len(r.Sender.Frames))
	for _, f := range r.Sender.Frames {
		sent = append(sent, f.Seq)
	}
	fmt.Fprintf(w, "Sender: %d frames sent, seq %v, acked %v, %d still in flight\n",
		len(r.Sender.Frames), sent, r.Sender.Acked, r.Sender.Pending)
	fmt.Fprintf(w, "Receiver: %d accepted, %d discarded, acks %v\n",
		r.Receiver.Accepted, r.Receiver.Discarded, r.Receiver.Acks)
}

package cliconfig

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bft-labs/slidingwindow/internal/app"
	"github.com/bft-labs/slidingwindow/internal/domain"
	"github.com/bft-labs/slidingwindow/pkg/log"
)

// Sequence space variants.
const (
	VariantGeneric = "generic"
	VariantTwoBit  = "two-bit"
)

// Keys double as flag names.
const (
	KeyPackets   = "packets"
	KeyBits      = "bits"
	KeyVariant   = "variant"
	KeyMode      = "mode"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyQuiet     = "quiet"
	KeyWatch     = "watch"
)

// Config holds CLI configuration for arqsim.
type Config struct {
	Packets int
	Bits    int
	Variant string
	Mode    string

	LogLevel  string
	LogFormat string
	Quiet     bool
	Watch     bool

	// set records which keys were supplied by a file, the environment or a flag.
	set map[string]bool
}

// DefaultConfig returns a Config with default values.
// Packets and Bits have no default; they are prompted for when not supplied.
func DefaultConfig() Config {
	return Config{
		Packets:   -1,
		Variant:   VariantGeneric,
		Mode:      string(app.ModeSimulated),
		LogLevel:  "info",
		LogFormat: log.FormatConsole,
	}
}

// MarkSet records that key was supplied explicitly.
func (c *Config) MarkSet(key string) {
	if c.set == nil {
		c.set = make(map[string]bool)
	}
	c.set[key] = true
}

// IsSet reports whether key was supplied explicitly.
func (c *Config) IsSet(key string) bool {
	return c.set[key]
}

// NeedsPackets reports whether the packet count still has to be prompted for.
func (c *Config) NeedsPackets() bool {
	return !c.IsSet(KeyPackets)
}

// NeedsBits reports whether the bit width still has to be prompted for.
// The two-bit variant never asks.
func (c *Config) NeedsBits() bool {
	return c.Variant == VariantGeneric && !c.IsSet(KeyBits)
}

// Validate rejects malformed input before any simulation component runs.
func (c *Config) Validate() error {
	if c.Packets < 0 {
		return fmt.Errorf("%w: packets must be >= 0, got %d", domain.ErrNegativePacketCount, c.Packets)
	}

	switch c.Variant {
	case VariantGeneric:
		if _, err := domain.NewSequenceSpace(c.Bits); err != nil {
			return err
		}
	case VariantTwoBit:
	default:
		return fmt.Errorf("%w: unknown variant %q (want %s or %s)", domain.ErrInvalidConfig, c.Variant, VariantGeneric, VariantTwoBit)
	}

	if _, err := app.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if c.LogFormat != log.FormatConsole && c.LogFormat != log.FormatJSON {
		return fmt.Errorf("%w: unknown log format %q", domain.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Space returns the configured sequence space. Call Validate first.
func (c *Config) Space() (domain.SequenceSpace, error) {
	if c.Variant == VariantTwoBit {
		return domain.TwoBitSequenceSpace(), nil
	}
	return domain.NewSequenceSpace(c.Bits)
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns the bootstrap logger used before configuration is loaded.
func Logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	cfg     *Config
	changed map[string]bool
}

func newConfigSetter(cfg *Config, changed map[string]bool) *configSetter {
	return &configSetter{cfg: cfg, changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(key, value string, dst *string) {
	if value == "" || s.changed[key] {
		return
	}
	*dst = value
	s.cfg.MarkSet(key)
}

// setInt sets an int value from a pointer if not nil and flag not changed.
func (s *configSetter) setInt(key string, value *int, dst *int) {
	if value == nil || s.changed[key] {
		return
	}
	*dst = *value
	s.cfg.MarkSet(key)
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(key string, value *bool, dst *bool) {
	if value == nil || s.changed[key] {
		return
	}
	*dst = *value
	s.cfg.MarkSet(key)
}

// setIntFromString parses a string to int and sets the destination.
// Negative values are kept so that Validate can reject them.
func (s *configSetter) setIntFromString(key, value string, dst *int) error {
	if value == "" || s.changed[key] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = i
	s.cfg.MarkSet(key)
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(key, value string, dst *bool) {
	if value == "" || s.changed[key] {
		return
	}
	*dst = value == "true" || value == "1"
	s.cfg.MarkSet(key)
}

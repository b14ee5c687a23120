package cliconfig

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "ARQSIM_"

// ApplyEnvConfig applies configuration from environment variables (ARQSIM_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(cfg, changed)

	if err := s.setIntFromString(KeyPackets, os.Getenv(EnvPrefix+"PACKETS"), &cfg.Packets); err != nil {
		return err
	}
	if err := s.setIntFromString(KeyBits, os.Getenv(EnvPrefix+"BITS"), &cfg.Bits); err != nil {
		return err
	}

	s.setString(KeyVariant, os.Getenv(EnvPrefix+"VARIANT"), &cfg.Variant)
	s.setString(KeyMode, os.Getenv(EnvPrefix+"MODE"), &cfg.Mode)
	s.setString(KeyLogLevel, os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString(KeyLogFormat, os.Getenv(EnvPrefix+"LOG_FORMAT"), &cfg.LogFormat)
	s.setBoolFromString(KeyQuiet, os.Getenv(EnvPrefix+"QUIET"), &cfg.Quiet)

	return nil
}

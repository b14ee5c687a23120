package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with pointers where zero is a meaningful value.
type FileConfig struct {
	Packets   *int   `toml:"packets"`
	Bits      *int   `toml:"bits"`
	Variant   string `toml:"variant"`
	Mode      string `toml:"mode"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Quiet     *bool  `toml:"quiet"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.arqsim/config.toml, or "" if the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".arqsim", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(cfg, changed)

	s.setInt(KeyPackets, fc.Packets, &cfg.Packets)
	s.setInt(KeyBits, fc.Bits, &cfg.Bits)
	s.setString(KeyVariant, fc.Variant, &cfg.Variant)
	s.setString(KeyMode, fc.Mode, &cfg.Mode)
	s.setString(KeyLogLevel, fc.LogLevel, &cfg.LogLevel)
	s.setString(KeyLogFormat, fc.LogFormat, &cfg.LogFormat)
	s.setBool(KeyQuiet, fc.Quiet, &cfg.Quiet)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

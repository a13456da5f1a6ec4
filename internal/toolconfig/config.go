// Package toolconfig loads and saves the YAML configuration cmd/inttrig's
// subcommands read their table size, angle sweep range, and output mode
// from, plus a library of named presets for common sweeps.
package toolconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultN          = 128
	DefaultSweepStart = 0
	DefaultSweepEnd   = 16383
	DefaultSweepStep  = 1
	DefaultOutputMode = "table"
)

// Config holds the parameters shared across cmd/inttrig's subcommands: the
// quarter-wave table size to instantiate and the angle range to sweep or
// display.
type Config struct {
	N          int    `yaml:"n"`
	SweepStart int    `yaml:"sweep_start"`
	SweepEnd   int    `yaml:"sweep_end"`
	SweepStep  int    `yaml:"sweep_step"`
	OutputMode string `yaml:"output_mode"`
}

// DefaultConfig returns the configuration cmd/inttrig falls back to when no
// config file or preset is given: the recommended default table size swept
// across a full turn.
func DefaultConfig() *Config {
	return &Config{
		N:          DefaultN,
		SweepStart: DefaultSweepStart,
		SweepEnd:   DefaultSweepEnd,
		SweepStep:  DefaultSweepStep,
		OutputMode: DefaultOutputMode,
	}
}

// Load reads a YAML config file, applying its fields on top of
// DefaultConfig so a partial file only overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StandardSizes are the table sizes internal/tablegen builds ahead of time
// and trig exposes as Trig32 .. Trig512.
var StandardSizes = []int{32, 64, 128, 256, 512}

// ValidateN reports an error if n is not one of the standard, pre-built
// table sizes.
func ValidateN(n int) error {
	for _, s := range StandardSizes {
		if s == n {
			return nil
		}
	}
	return fmt.Errorf("n=%d is not a standard table size (%v)", n, StandardSizes)
}

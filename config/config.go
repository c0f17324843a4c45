// Package config loads the LS8 run configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrStackTop = errors.New(f("stack_top outside of memory"))
)

// Config is the contents of an ls8.toml file.
type Config struct {
	Cpu CpuConfig `toml:"cpu"`
	Run RunConfig `toml:"run"`
}

// CpuConfig configures the processor.
type CpuConfig struct {
	StackTop int `toml:"stack_top"`
}

// RunConfig configures the emulator.
type RunConfig struct {
	Verbose  bool   `toml:"verbose"`
	Trace    bool   `toml:"trace"`
	Snapshot string `toml:"snapshot"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Cpu: CpuConfig{
			StackTop: cpu.STACK_TOP,
		},
	}
}

// Parse decodes a TOML document over the defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load parses the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the values can be applied to a CPU.
func (cfg *Config) Validate() error {
	if cfg.Cpu.StackTop < 0 || cfg.Cpu.StackTop >= cpu.MEMORY_SIZE {
		return fmt.Errorf("%w: 0x%x", ErrStackTop, cfg.Cpu.StackTop)
	}

	return nil
}

// Apply configures a CPU. The stack pointer takes the new StackTop at the
// next reset.
func (cfg *Config) Apply(proc *cpu.Cpu) {
	proc.StackTop = byte(cfg.Cpu.StackTop)
	proc.Verbose = cfg.Run.Verbose
}

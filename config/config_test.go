package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/cpu"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(cpu.STACK_TOP, cfg.Cpu.StackTop)
	assert.False(cfg.Run.Verbose)
	assert.False(cfg.Run.Trace)
	assert.Empty(cfg.Run.Snapshot)
	assert.NoError(cfg.Validate())
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse(`
[cpu]
stack_top = 0xE0

[run]
trace = true
snapshot = "core.cbor"
`)
	assert.NoError(err)
	assert.Equal(0xe0, cfg.Cpu.StackTop)
	assert.True(cfg.Run.Trace)
	assert.False(cfg.Run.Verbose)
	assert.Equal("core.cbor", cfg.Run.Snapshot)

	proc := cpu.NewCpu()
	cfg.Apply(proc)
	proc.Reset()
	assert.Equal(byte(0xe0), proc.Register[cpu.REGISTER_SP])
}

func TestParse_Partial(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse("[run]\nverbose = true\n")
	assert.NoError(err)
	assert.True(cfg.Run.Verbose)
	assert.Equal(cpu.STACK_TOP, cfg.Cpu.StackTop)
}

func TestParse_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("[cpu]\nstack_top = 256\n")
	assert.ErrorIs(err, ErrStackTop)

	_, err = Parse("[cpu]\nstack_top = -1\n")
	assert.ErrorIs(err, ErrStackTop)

	_, err = Parse("[cpu\n")
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "ls8.toml")
	assert.NoError(os.WriteFile(path, []byte("[cpu]\nstack_top = 0x80\n"), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(0x80, cfg.Cpu.StackTop)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}

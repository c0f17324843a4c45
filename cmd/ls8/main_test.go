package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

func execute(args ...string) (output string, err error) {
	out := &bytes.Buffer{}
	cmd := rootCommand()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err = cmd.Execute()
	output = out.String()
	return
}

func TestRun_Ls8(t *testing.T) {
	assert := assert.New(t)

	output, err := execute("run", "testdata/mult.ls8")
	assert.NoError(err)
	assert.Equal("72\n", output)
}

func TestRun_Asm(t *testing.T) {
	assert := assert.New(t)

	output, err := execute("run", "testdata/call.asm")
	assert.NoError(err)
	assert.Equal("20\n30\n36\n60\n", output)
}

func TestRun_LoadError(t *testing.T) {
	assert := assert.New(t)

	output, err := execute("run", "testdata/bad.ls8")
	assert.ErrorIs(err, cpu.ErrLoad)
	assert.Empty(output)
}

func TestRun_Missing(t *testing.T) {
	assert := assert.New(t)

	_, err := execute("run", "testdata/missing.ls8")
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestRun_Snapshot(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "core.cbor")
	_, err := execute("run", "--snapshot", path, "testdata/illegal.asm")
	assert.ErrorIs(err, cpu.ErrIllegalInstruction)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	snap, err := emulator.UnmarshalSnapshot(data)
	assert.NoError(err)
	assert.Equal(3, snap.Pc)
	assert.Equal(2, snap.LineNo)
	assert.NotEmpty(snap.Fault)

	output, err := execute("inspect", path)
	assert.NoError(err)
	assert.Contains(output, "    pc: 03\n")
	assert.Contains(output, "  line: 2\n")
	assert.Contains(output, "TRACE: 03 | FF 01 00 |")
}

func TestRun_Config(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	cfg := filepath.Join(dir, "ls8.toml")
	assert.NoError(os.WriteFile(cfg, []byte("[cpu]\nstack_top = 0x80\n"), 0o644))
	prog := filepath.Join(dir, "sp.asm")
	assert.NoError(os.WriteFile(prog, []byte("PRN SP\nHLT\n"), 0o644))

	output, err := execute("run", "--config", cfg, prog)
	assert.NoError(err)
	assert.Equal("128\n", output)

	output, err = execute("run", prog)
	assert.NoError(err)
	assert.Equal("244\n", output)
}

func TestAsm(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	out := filepath.Join(dir, "call.ls8")

	_, err := execute("asm", "-o", out, "testdata/call.asm")
	assert.NoError(err)

	output, err := execute("run", out)
	assert.NoError(err)
	assert.Equal("20\n30\n36\n60\n", output)

	src := filepath.Join(dir, "define.asm")
	assert.NoError(os.WriteFile(src, []byte("LDI R0,VALUE\nPRN R0\nHLT\n"), 0o644))

	listing, err := execute("asm", "-D", "VALUE=42", src)
	assert.NoError(err)
	assert.Contains(listing, "10000010 # LDI R0 42\n")
}

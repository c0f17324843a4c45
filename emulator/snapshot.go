package emulator

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/ezrec/ls8/cpu"
)

// cborEncMode uses canonical encoding, so identical machine states
// produce identical snapshots.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("emulator: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Snapshot is the complete machine state at a point in time.
type Snapshot struct {
	Pc       int           `cbor:"pc"`
	Register cpu.Registers `cbor:"registers"`
	Memory   []byte        `cbor:"memory"`
	Equal    bool          `cbor:"equal"`
	Halted   bool          `cbor:"halted"`
	StackTop byte          `cbor:"stack_top"`
	Ticks    int           `cbor:"ticks"`
	LineNo   int           `cbor:"lineno,omitempty"`
	Fault    string        `cbor:"fault,omitempty"`
}

// Snapshot captures the machine state. If fault is not nil, its message
// is recorded with the state.
func (emu *Emulator) Snapshot(fault error) (snap *Snapshot) {
	snap = &Snapshot{
		Pc:       emu.Cpu.Pc,
		Register: emu.Cpu.Register,
		Memory:   append([]byte(nil), emu.Cpu.Memory.Data[:]...),
		Equal:    emu.Cpu.Equal,
		Halted:   emu.Cpu.Halted,
		StackTop: emu.Cpu.StackTop,
		Ticks:    emu.Cpu.Ticks,
		LineNo:   emu.LineNo(),
	}

	if fault != nil {
		snap.Fault = fault.Error()
	}

	return
}

// Restore the machine state from a snapshot.
func (emu *Emulator) Restore(snap *Snapshot) (err error) {
	if len(snap.Memory) != emu.Cpu.Memory.Size() {
		err = ErrSnapshotMemory
		return
	}

	copy(emu.Cpu.Memory.Data[:], snap.Memory)
	emu.Cpu.Pc = snap.Pc
	emu.Cpu.Register = snap.Register
	emu.Cpu.Equal = snap.Equal
	emu.Cpu.Halted = snap.Halted
	emu.Cpu.StackTop = snap.StackTop
	emu.Cpu.Ticks = snap.Ticks

	return
}

// MarshalSnapshot serializes a Snapshot to CBOR bytes.
func MarshalSnapshot(snap *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(snap)
}

// UnmarshalSnapshot deserializes a Snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("emulator: unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

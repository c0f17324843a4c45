package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Channel is an output channel interface.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("0x%x", STACK_TOP),
	"SP":          fmt.Sprintf("R%d", REGISTER_SP),
}

// Cpu is the simulation context for the LS8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory    // Program and stack memory.
	Register Registers // Register bank. R7 is the stack pointer.
	Pc       int       // Address of the next instruction.
	Equal    bool      // Set by CMP when both operands were equal.
	Halted   bool      // Set by HLT.
	StackTop byte      // Stack pointer value after a reset.

	Output Channel // Destination of PRN.

	Ticks int // Executed instructions counter.
}

// NewCpu creates a new CPU in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		StackTop: STACK_TOP,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"equal",
		"halted",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "sp",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "equal":
			strval = fmt.Sprintf("%v", cpu.Equal)
		case "halted":
			strval = fmt.Sprintf("%v", cpu.Halted)
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6":
			val := cpu.Register[byte(reg[1]-'0')]
			strval = fmt.Sprintf("%02X", val)
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Register[REGISTER_SP])
		case "stack":
			if cpu.Depth() <= 0 {
				strval = "--"
			} else if val, err := cpu.Peek(); err == nil {
				strval = fmt.Sprintf("%02X", val)
			} else {
				strval = "??"
			}
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// Trace returns a single line summary of the CPU state: the PC, the three
// bytes at the PC, and all of the registers.
func (cpu *Cpu) Trace() (text string) {
	text = fmt.Sprintf("TRACE: %02X |", cpu.Pc)
	for n := range 3 {
		val, err := cpu.Memory.Read(cpu.Pc + n)
		if err != nil {
			text += " --"
		} else {
			text += fmt.Sprintf(" %02X", val)
		}
	}
	text += " |"
	for _, val := range cpu.Register {
		text += fmt.Sprintf(" %02X", val)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, memory, and Equal flag.
// - Zeros the statistics counter.
// - Sets the PC to 0 and the stack pointer to StackTop.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	clear(cpu.Register[:])
	cpu.Register[REGISTER_SP] = cpu.StackTop
	cpu.Pc = 0
	cpu.Equal = false
	cpu.Halted = false
	cpu.Ticks = 0
}

// FetchCode fetches the instruction at the PC. Only the operand bytes
// used by the opcode are read from memory.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	value, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	code.Opcode = Opcode(value)
	if !code.Opcode.Valid() {
		err = errors.Join(ErrOpcode{Pc: cpu.Pc, Opcode: code.Opcode}, ErrIllegalInstruction)
		return
	}

	for n := range code.Opcode.Operands() {
		code.Operands[n], err = cpu.Memory.Read(cpu.Pc + 1 + n)
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: cpu.Pc, Opcode: code.Opcode}, err)
			return
		}
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)

	return
}

// Execute executes a single decoded instruction.
// The PC is only updated once the instruction has completed.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: cpu.Pc, Opcode: code.Opcode}, err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, code)
	}

	reg_a := int(code.Operands[0])
	reg_b := int(code.Operands[1])

	next_pc := cpu.Pc + code.Opcode.Width()

	switch code.Opcode {
	case OP_HLT:
		cpu.Halted = true
	case OP_RET:
		var addr byte
		addr, err = cpu.Pop()
		if err != nil {
			return
		}
		next_pc = int(addr)
	case OP_PRN:
		var val byte
		val, err = cpu.Register.Get(reg_a)
		if err != nil {
			return
		}
		if cpu.Output == nil {
			err = ErrConsoleMissing
			return
		}
		err = cpu.Output.Send(val)
		if err != nil {
			return
		}
	case OP_PUSH:
		var val byte
		val, err = cpu.Register.Get(reg_a)
		if err != nil {
			return
		}
		err = cpu.Push(val)
		if err != nil {
			return
		}
	case OP_POP:
		_, err = cpu.Register.Get(reg_a)
		if err != nil {
			return
		}
		var val byte
		val, err = cpu.Pop()
		if err != nil {
			return
		}
		cpu.Register[reg_a] = val
	case OP_CALL:
		var addr byte
		addr, err = cpu.Register.Get(reg_a)
		if err != nil {
			return
		}
		err = cpu.Push(byte(cpu.Pc + 2))
		if err != nil {
			return
		}
		next_pc = int(addr)
	case OP_JMP, OP_JEQ, OP_JNE:
		var addr byte
		addr, err = cpu.Register.Get(reg_a)
		if err != nil {
			return
		}
		switch {
		case code.Opcode == OP_JMP,
			code.Opcode == OP_JEQ && cpu.Equal,
			code.Opcode == OP_JNE && !cpu.Equal:
			next_pc = int(addr)
		}
	case OP_LDI:
		err = cpu.Register.Set(reg_a, code.Operands[1])
		if err != nil {
			return
		}
	case OP_ADD, OP_MUL, OP_CMP:
		err = cpu.doAlu(aluOps[code.Opcode], reg_a, reg_b)
		if err != nil {
			return
		}
	default:
		err = ErrIllegalInstruction
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}

// aluOps maps ALU opcodes to their ALU operation.
var aluOps = map[Opcode]AluOp{
	OP_ADD: ALU_OP_ADD,
	OP_MUL: ALU_OP_MUL,
	OP_CMP: ALU_OP_CMP,
}

// doAlu runs the ALU over two registers. Results are written back to
// register A, flag updates to the Equal flag. Register B is never written.
func (cpu *Cpu) doAlu(op AluOp, reg_a int, reg_b int) (err error) {
	a, err := cpu.Register.Get(reg_a)
	if err != nil {
		return
	}
	b, err := cpu.Register.Get(reg_b)
	if err != nil {
		return
	}

	result, flag, err := Alu(op, a, b)
	if err != nil {
		return
	}

	if op != ALU_OP_CMP {
		cpu.Register[reg_a] = result
	}
	cpu.Equal = flag.Apply(cpu.Equal)

	return
}

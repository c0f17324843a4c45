package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the first byte of an instruction.
type Opcode byte

const (
	OP_HLT  = Opcode(0b0000_0001) // hlt
	OP_RET  = Opcode(0b0001_0001) // ret
	OP_PUSH = Opcode(0b0100_0101) // push
	OP_POP  = Opcode(0b0100_0110) // pop
	OP_PRN  = Opcode(0b0100_0111) // prn
	OP_CALL = Opcode(0b0101_0000) // call
	OP_JMP  = Opcode(0b0101_0100) // jmp
	OP_JEQ  = Opcode(0b0101_0101) // jeq
	OP_JNE  = Opcode(0b0101_0110) // jne
	OP_LDI  = Opcode(0b1000_0010) // ldi
	OP_ADD  = Opcode(0b1010_0000) // add
	OP_MUL  = Opcode(0b1010_0010) // mul
	OP_CMP  = Opcode(0b1010_0111) // cmp
)

// CodeArg is the kind of an instruction operand.
type CodeArg int

const (
	ARG_NONE      = CodeArg(0) // -
	ARG_REGISTER  = CodeArg(1) // register
	ARG_IMMEDIATE = CodeArg(2) // immediate
)

// opcodeInfo describes a registered opcode.
type opcodeInfo struct {
	Name string
	Args [2]CodeArg
}

// opcodeTable is the fixed table of registered opcodes.
// Unregistered entries have an empty Name.
var opcodeTable = [256]opcodeInfo{
	OP_HLT:  {"HLT", [2]CodeArg{}},
	OP_RET:  {"RET", [2]CodeArg{}},
	OP_PUSH: {"PUSH", [2]CodeArg{ARG_REGISTER}},
	OP_POP:  {"POP", [2]CodeArg{ARG_REGISTER}},
	OP_PRN:  {"PRN", [2]CodeArg{ARG_REGISTER}},
	OP_CALL: {"CALL", [2]CodeArg{ARG_REGISTER}},
	OP_JMP:  {"JMP", [2]CodeArg{ARG_REGISTER}},
	OP_JEQ:  {"JEQ", [2]CodeArg{ARG_REGISTER}},
	OP_JNE:  {"JNE", [2]CodeArg{ARG_REGISTER}},
	OP_LDI:  {"LDI", [2]CodeArg{ARG_REGISTER, ARG_IMMEDIATE}},
	OP_ADD:  {"ADD", [2]CodeArg{ARG_REGISTER, ARG_REGISTER}},
	OP_MUL:  {"MUL", [2]CodeArg{ARG_REGISTER, ARG_REGISTER}},
	OP_CMP:  {"CMP", [2]CodeArg{ARG_REGISTER, ARG_REGISTER}},
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = func() map[string]Opcode {
	ops := map[string]Opcode{}
	for n, info := range opcodeTable {
		if len(info.Name) != 0 {
			ops[info.Name] = Opcode(n)
		}
	}
	return ops
}()

// LookupOpcode finds the opcode of a mnemonic, ignoring case.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[strings.ToUpper(mnemonic)]
	return
}

// Valid returns true if the opcode has a registered handler.
func (op Opcode) Valid() bool {
	return len(opcodeTable[op].Name) != 0
}

// Args returns the operand kinds of the opcode.
func (op Opcode) Args() [2]CodeArg {
	return opcodeTable[op].Args
}

// Operands returns the number of operand bytes that follow the opcode.
func (op Opcode) Operands() (count int) {
	for _, arg := range opcodeTable[op].Args {
		if arg != ARG_NONE {
			count++
		}
	}
	return
}

// Width returns the instruction width in bytes, including the opcode.
func (op Opcode) Width() int {
	return 1 + op.Operands()
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	name := opcodeTable[op].Name
	if len(name) == 0 {
		return fmt.Sprintf("OP_%02X", byte(op))
	}
	return name
}

// Code is a single decoded instruction.
type Code struct {
	Opcode   Opcode
	Operands [2]byte
}

// Bytes returns the encoded instruction.
func (code Code) Bytes() []byte {
	data := []byte{byte(code.Opcode)}
	return append(data, code.Operands[:code.Opcode.Operands()]...)
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	out = code.Opcode.String()

	var args []string
	for n, arg := range code.Opcode.Args() {
		switch arg {
		case ARG_REGISTER:
			args = append(args, fmt.Sprintf("R%d", code.Operands[n]))
		case ARG_IMMEDIATE:
			args = append(args, fmt.Sprintf("%d", code.Operands[n]))
		}
	}

	if len(args) != 0 {
		out += " " + strings.Join(args, ",")
	}

	return
}

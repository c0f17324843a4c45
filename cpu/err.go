package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrOutOfBounds          = errors.New(f("address out of bounds"))
	ErrInvalidRegister      = errors.New(f("invalid register"))
	ErrIllegalInstruction   = errors.New(f("illegal instruction"))
	ErrUnsupportedOperation = errors.New(f("unsupported alu operation"))
	ErrHalted               = errors.New(f("halted"))
	ErrConsoleMissing       = errors.New(f("console missing"))

	// Loader errors
	ErrLoad = errors.New(f("load"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrRegisterMissing    = errors.New(f("register expected"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrProgramTooLarge    = errors.New(f("program too large"))
)

// ErrAddress is a memory access outside of the memory extent.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address 0x%02x out of bounds", int(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrOutOfBounds
}

// ErrRegister is an access to a register outside of the register file.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register R%d invalid", int(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrInvalidRegister
}

// ErrAluOp is an ALU operation the ALU does not implement.
type ErrAluOp AluOp

func (ea ErrAluOp) Error() string {
	return f("alu operation %d unsupported", int(ea))
}

func (ea ErrAluOp) Unwrap() error {
	return ErrUnsupportedOperation
}

// ErrOpcode locates the instruction that failed.
type ErrOpcode struct {
	Pc     int
	Opcode Opcode
}

func (eo ErrOpcode) Error() string {
	return f("pc 0x%02x opcode 0x%02x %v", eo.Pc, uint8(eo.Opcode), eo.Opcode.String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseBinary string

func (err ErrParseBinary) Error() string {
	return f("'%v' is not an 8-bit binary literal", string(err))
}

func (err ErrParseBinary) Unwrap() error {
	return ErrLoad
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

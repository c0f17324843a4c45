package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, lines ...string) (prog *Program, err error) {
	t.Helper()
	asm := &Assembler{}
	prog, err = asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	return
}

func TestAssembler_Instructions(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line  string
		bytes []byte
	}){
		{"HLT", []byte{0x01}},
		{"RET", []byte{0x11}},
		{"PRN R0", []byte{0x47, 0}},
		{"PUSH R1", []byte{0x45, 1}},
		{"POP R2", []byte{0x46, 2}},
		{"CALL R3", []byte{0x50, 3}},
		{"JMP R4", []byte{0x54, 4}},
		{"JEQ R5", []byte{0x55, 5}},
		{"JNE R6", []byte{0x56, 6}},
		{"LDI R0,8", []byte{0x82, 0, 8}},
		{"ldi r1, 0x10", []byte{0x82, 1, 0x10}},
		{"LDI R1 0b101", []byte{0x82, 1, 5}},
		{"LDI R2,-1", []byte{0x82, 2, 0xff}},
		{"LDI R2,~1", []byte{0x82, 2, 0xfe}},
		{"LDI R3,'A'", []byte{0x82, 3, 65}},
		{"LDI R3,'\\n'", []byte{0x82, 3, 10}},
		{"ADD R0,R1", []byte{0xa0, 0, 1}},
		{"MUL R0,R1", []byte{0xa2, 0, 1}},
		{"CMP R6,R7", []byte{0xa7, 6, 7}},
		{"DB 1 2 0xff", []byte{1, 2, 0xff}},
		{"LDI R0,$(3*4+1)", []byte{0x82, 0, 13}},
		{"  LDI R0,8 ; load eight", []byte{0x82, 0, 8}},
		{"LDI R0,8 # load eight", []byte{0x82, 0, 8}},
	}

	for _, entry := range table {
		prog, err := assemble(t, entry.line)
		assert.NoError(err, entry.line)
		if err != nil {
			continue
		}
		assert.Equal(entry.bytes, prog.Binary(), entry.line)
	}
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		lines  []string
		err    error
		lineno int
	}){
		{"invalid", []string{"NOP"}, ErrInstructionInvalid, 1},
		{"extra", []string{"HLT", "PRN R0,R1"}, ErrOpcodeExtraArgs, 2},
		{"missing", []string{"LDI R0"}, ErrOpcodeValueMissing, 1},
		{"register", []string{"PRN R8"}, ErrInvalidRegister, 1},
		{"not_register", []string{"ADD R0,5"}, ErrRegisterMissing, 1},
		{"immediate", []string{"LDI R0,0x100"}, ErrParseNumber("0x100"), 1},
		{"label_dup", []string{"A: HLT", "A: HLT"}, ErrLabelDuplicate, 2},
		{"label_missing", []string{"HLT", "LDI R0,NOWHERE", "HLT"}, ErrLabelMissing("NOWHERE"), 2},
		{"equ_syntax", []string{".equ A"}, ErrEquateSyntax, 1},
		{"equ_dup", []string{".equ A 1", ".equ A 2"}, ErrEquateDuplicate, 2},
		{"expr", []string{"LDI R0,$(1 +)"}, ErrParseExpression("1 +"), 1},
		{"macro_lonely", []string{".macro X", "HLT"}, ErrMacroLonely, 2},
		{"endm_lonely", []string{".endm"}, ErrMacroLonelyEndm, 1},
		{"too_large", []string{"DB " + strings.Repeat("1 ", MEMORY_SIZE+1)}, ErrProgramTooLarge, 1},
	}

	for _, entry := range table {
		prog, err := assemble(t, entry.lines...)
		assert.Nil(prog, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var es ErrSyntax
		assert.True(errors.As(err, &es), entry.name)
		assert.Equal(entry.lineno, es.LineNo, entry.name)
	}
}

func TestAssembler_Labels(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(t,
		"        LDI R1,SUB",
		"        CALL R1",
		"LOOP:   LDI R2,LOOP",
		"        HLT",
		"SUB:    LDI R0,$(SUB+1)",
		"        RET",
	)
	assert.NoError(err)

	assert.Equal([]byte{
		0x82, 1, 9, // 0: LDI R1,SUB
		0x50, 1, // 3: CALL R1
		0x82, 2, 5, // 5: LDI R2,LOOP
		0x01,        // 8: HLT
		0x82, 0, 10, // 9: LDI R0,$(SUB+1)
		0x11, // 12: RET
	}, prog.Binary())
}

func TestAssembler_Equates(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "0x20")
	prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
		".equ COUNT R2",
		".equ TEN 10",
		"LDI COUNT,TEN",
		"LDI R0,$(BASE+TEN)",
		"LDI R1,$(LINENO)",
		"PUSH SP",
	}, "\n")))
	assert.Error(err)
	assert.ErrorIs(err, ErrRegisterMissing)

	asm.Predefine("SP", "R7")
	prog, err = asm.Parse(strings.NewReader(strings.Join([]string{
		".equ COUNT R2",
		".equ TEN 10",
		"LDI COUNT,TEN",
		"LDI R0,$(BASE+TEN)",
		"LDI R1,$(LINENO)",
		"PUSH SP",
	}, "\n")))
	assert.NoError(err)
	assert.Equal([]byte{
		0x82, 2, 10,
		0x82, 0, 42,
		0x82, 1, 5,
		0x45, 7,
	}, prog.Binary())
}

func TestAssembler_Macro(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(t,
		".macro PRINT REG VALUE",
		"LDI REG,VALUE",
		"PRN REG",
		".endm",
		"PRINT R0 8",
		"PRINT R1 9",
		"HLT",
	)
	assert.NoError(err)

	assert.Equal([]byte{
		0x82, 0, 8, 0x47, 0,
		0x82, 1, 9, 0x47, 1,
		0x01,
	}, prog.Binary())

	dbg := prog.Debug(5)
	assert.Equal(2, dbg.LineNo)
	dbg = prog.Debug(10)
	assert.Equal(7, dbg.LineNo)

	_, err = assemble(t,
		".macro PRINT REG",
		"PRN REG",
		".endm",
		"PRINT R0 R1",
	)
	assert.ErrorIs(err, ErrMacroSyntax)
}

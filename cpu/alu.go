package cpu

// AluOp is an ALU operation type.
type AluOp int

const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_MUL = AluOp(1) // mul
	ALU_OP_CMP = AluOp(2) // cmp
)

// FlagUpdate is the effect of an ALU operation on the Equal flag.
type FlagUpdate int

const (
	FLAG_KEEP        = FlagUpdate(0) // Equal flag unchanged.
	FLAG_EQUAL_SET   = FlagUpdate(1) // Operands were equal.
	FLAG_EQUAL_CLEAR = FlagUpdate(2) // Operands differed.
)

// Apply the flag update to the current Equal flag state.
func (fu FlagUpdate) Apply(equal bool) bool {
	switch fu {
	case FLAG_EQUAL_SET:
		return true
	case FLAG_EQUAL_CLEAR:
		return false
	}
	return equal
}

// Alu performs the requested ALU action on two register values.
// Arithmetic wraps at 8 bits. CMP produces no result, only a flag update.
func Alu(op AluOp, a byte, b byte) (result byte, flag FlagUpdate, err error) {
	switch op {
	case ALU_OP_ADD:
		result = a + b
	case ALU_OP_MUL:
		result = a * b
	case ALU_OP_CMP:
		flag = FLAG_EQUAL_CLEAR
		if a == b {
			flag = FLAG_EQUAL_SET
		}
	default:
		err = ErrAluOp(op)
	}

	return
}

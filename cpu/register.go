package cpu

const (
	REGISTER_COUNT = 8    // General purpose registers.
	REGISTER_SP    = 7    // Register used as the stack pointer.
	STACK_TOP      = 0xf4 // Reset value of the stack pointer.
)

// Registers is the register file. All registers are 8 bits wide.
type Registers [REGISTER_COUNT]byte

// Get the value of a register.
func (regs *Registers) Get(index int) (value byte, err error) {
	if index < 0 || index >= len(regs) {
		err = ErrRegister(index)
		return
	}

	value = regs[index]
	return
}

// Set the value of a register.
func (regs *Registers) Set(index int, value byte) (err error) {
	if index < 0 || index >= len(regs) {
		err = ErrRegister(index)
		return
	}

	regs[index] = value
	return
}

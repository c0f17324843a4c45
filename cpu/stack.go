package cpu

// Push decrements the stack pointer, then stores the value at the new
// stack pointer address.
func (cpu *Cpu) Push(value byte) (err error) {
	sp := int(cpu.Register[REGISTER_SP]) - 1

	err = cpu.Memory.Write(sp, value)
	if err != nil {
		return
	}

	cpu.Register[REGISTER_SP] = byte(sp)
	return
}

// Pop reads the value at the stack pointer, then increments the stack
// pointer.
func (cpu *Cpu) Pop() (value byte, err error) {
	sp := int(cpu.Register[REGISTER_SP])

	if !cpu.Memory.Valid(sp + 1) {
		err = ErrAddress(sp + 1)
		return
	}

	value, err = cpu.Memory.Read(sp)
	if err != nil {
		return
	}

	cpu.Register[REGISTER_SP] = byte(sp + 1)
	return
}

// Peek returns the value at the top of the stack, without popping it.
func (cpu *Cpu) Peek() (value byte, err error) {
	return cpu.Memory.Read(int(cpu.Register[REGISTER_SP]))
}

// Depth returns the number of bytes pushed since reset.
func (cpu *Cpu) Depth() int {
	return int(cpu.StackTop) - int(cpu.Register[REGISTER_SP])
}

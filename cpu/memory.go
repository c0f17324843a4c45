package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the flat, byte addressable memory of the CPU.
type Memory struct {
	Data [MEMORY_SIZE]byte
}

// Size returns the number of addressable bytes.
func (mem *Memory) Size() int {
	return len(mem.Data)
}

// Valid returns true if the address is inside the memory extent.
func (mem *Memory) Valid(address int) bool {
	return address >= 0 && address < len(mem.Data)
}

// Read a byte from memory.
func (mem *Memory) Read(address int) (value byte, err error) {
	if !mem.Valid(address) {
		err = ErrAddress(address)
		return
	}

	value = mem.Data[address]
	return
}

// Write a byte to memory.
func (mem *Memory) Write(address int, value byte) (err error) {
	if !mem.Valid(address) {
		err = ErrAddress(address)
		return
	}

	mem.Data[address] = value
	return
}

// Load copies a program image into memory, starting at address 0.
// Nothing is written if the image does not fit.
func (mem *Memory) Load(image []byte) (err error) {
	if len(image) > len(mem.Data) {
		err = ErrAddress(len(mem.Data))
		return
	}

	copy(mem.Data[:], image)
	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem.Data[:])
}

package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.Equal(MEMORY_SIZE, mem.Size())

	for address := range MEMORY_SIZE {
		value := byte(address*7 + 3)
		assert.NoError(mem.Write(address, value))
		got, err := mem.Read(address)
		assert.NoError(err)
		assert.Equal(value, got)
	}
}

func TestMemory_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	for _, address := range []int{-1, MEMORY_SIZE, MEMORY_SIZE + 1, 1 << 20} {
		_, err := mem.Read(address)
		assert.ErrorIs(err, ErrOutOfBounds, address)
		assert.Equal(ErrAddress(address), err)

		err = mem.Write(address, 0x55)
		assert.ErrorIs(err, ErrOutOfBounds, address)
	}

	// Nothing was written.
	assert.Equal([MEMORY_SIZE]byte{}, mem.Data)
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.NoError(mem.Load([]byte{1, 2, 3}))
	assert.Equal([]byte{1, 2, 3, 0}, mem.Data[:4])

	err := mem.Load(make([]byte, MEMORY_SIZE+1))
	assert.True(errors.Is(err, ErrOutOfBounds))
	assert.Equal(byte(1), mem.Data[0])

	mem.Reset()
	assert.Equal(byte(0), mem.Data[0])
}

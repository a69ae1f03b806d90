package intcode

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Read(t *testing.T) {
	assert := assert.New(t)

	program := []int{1, 2, 3}
	mem := NewMemory(program)

	for addr, want := range program {
		value, err := mem.Read(addr)
		assert.NoError(err)
		assert.Equal(want, value)
	}

	value, err := mem.Read(1 << 40)
	assert.NoError(err)
	assert.Equal(0, value)

	_, err = mem.Read(-1)
	assert.True(errors.Is(err, ErrAddress(0)))
}

func TestMemory_Write(t *testing.T) {
	assert := assert.New(t)

	program := []int{1, 2, 3}
	mem := NewMemory(program)

	assert.NoError(mem.Write(1, 20))
	assert.NoError(mem.Write(1000, -7))

	value, _ := mem.Read(1)
	assert.Equal(20, value)
	value, _ = mem.Read(1000)
	assert.Equal(-7, value)

	// The originating program is not shared.
	assert.Equal([]int{1, 2, 3}, program)

	assert.Equal(3, len(mem.Dense))
	assert.Equal(map[int]int{1000: -7}, mem.Sparse)
	assert.Equal(1001, mem.Len())

	err := mem.Write(-5, 1)
	assert.Equal(ErrAddress(-5), err)
}

func TestMemory_Clone(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory([]int{5, 6})
	mem.Write(10, 11)

	dup := mem.Clone()
	dup.Write(0, 50)
	dup.Write(10, 110)

	value, _ := mem.Read(0)
	assert.Equal(5, value)
	value, _ = mem.Read(10)
	assert.Equal(11, value)
}

func TestMemory_Cells(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory([]int{5, 6})
	mem.Write(30, 3)
	mem.Write(20, 2)

	cells := maps.Collect(mem.Cells())
	assert.Equal(map[int]int{0: 5, 1: 6, 20: 2, 30: 3}, cells)

	var addrs []int
	for addr := range mem.Cells() {
		addrs = append(addrs, addr)
	}
	assert.Equal([]int{0, 1, 20, 30}, addrs)
}

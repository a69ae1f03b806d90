package intcode

import (
	"iter"
	"maps"
	"slices"

	"github.com/dhruvmanila/intcode/internal"
)

// Memory is the address space of a machine. Addresses within the loaded
// program are held densely, all others sparsely.
type Memory struct {
	Dense  []int       // Cells 0 through len(Dense)-1.
	Sparse map[int]int // Cells written beyond the dense prefix.
}

// NewMemory creates a memory holding a copy of the program from address 0.
func NewMemory(program []int) (mem *Memory) {
	mem = &Memory{
		Dense: slices.Clone(program),
	}

	return
}

// Read returns the value at an address. Never written addresses read as 0.
func (mem *Memory) Read(addr int) (value int, err error) {
	if addr < 0 {
		err = ErrAddress(addr)
		return
	}

	if addr < len(mem.Dense) {
		value = mem.Dense[addr]
		return
	}

	value = mem.Sparse[addr]
	return
}

// Write sets the value at any non-negative address.
func (mem *Memory) Write(addr int, value int) (err error) {
	if addr < 0 {
		err = ErrAddress(addr)
		return
	}

	if addr < len(mem.Dense) {
		mem.Dense[addr] = value
		return
	}

	if mem.Sparse == nil {
		mem.Sparse = map[int]int{}
	}
	mem.Sparse[addr] = value

	return
}

// Len returns one past the highest address that holds a value.
func (mem *Memory) Len() (size int) {
	size = len(mem.Dense)
	for addr := range mem.Sparse {
		size = max(size, addr+1)
	}
	return
}

// Clone returns an independent copy of the memory.
func (mem *Memory) Clone() *Memory {
	return &Memory{
		Dense:  slices.Clone(mem.Dense),
		Sparse: maps.Clone(mem.Sparse),
	}
}

// Cells returns an iterator over every held address in ascending order.
func (mem *Memory) Cells() iter.Seq2[int, int] {
	var sparse iter.Seq2[int, int] = func(yield func(addr int, value int) bool) {
		for _, addr := range slices.Sorted(maps.Keys(mem.Sparse)) {
			if !yield(addr, mem.Sparse[addr]) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(slices.All(mem.Dense), sparse)
}

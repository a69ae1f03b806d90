package intcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		word  int
		op    Opcode
		modes [MAX_PARAMS]Mode
	}){
		{"add", 1, OP_ADD, [MAX_PARAMS]Mode{}},
		{"mul_pi", 1002, OP_MUL, [MAX_PARAMS]Mode{MODE_POSITION, MODE_IMMEDIATE, MODE_POSITION}},
		{"add_iir", 21101, OP_ADD, [MAX_PARAMS]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE}},
		{"in_r", 203, OP_INPUT, [MAX_PARAMS]Mode{MODE_RELATIVE}},
		{"out_i", 104, OP_OUTPUT, [MAX_PARAMS]Mode{MODE_IMMEDIATE}},
		{"jnz_ii", 1105, OP_JUMP_TRUE, [MAX_PARAMS]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE}},
		{"jz_rp", 206, OP_JUMP_FALSE, [MAX_PARAMS]Mode{MODE_RELATIVE}},
		{"lt", 1107, OP_LESS_THAN, [MAX_PARAMS]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE}},
		{"eq", 1008, OP_EQUALS, [MAX_PARAMS]Mode{MODE_POSITION, MODE_IMMEDIATE}},
		{"arb_i", 109, OP_ADJUST_BASE, [MAX_PARAMS]Mode{MODE_IMMEDIATE}},
		{"arb_r", 209, OP_ADJUST_BASE, [MAX_PARAMS]Mode{MODE_RELATIVE}},
		{"halt", 99, OP_HALT, [MAX_PARAMS]Mode{}},
	}

	for _, entry := range table {
		ins, err := Decode(entry.word)
		assert.NoError(err, entry.name)
		assert.Equal(entry.word, ins.Word, entry.name)
		assert.Equal(entry.op, ins.Op, entry.name)
		assert.Equal(entry.modes, ins.Modes, entry.name)
		assert.Equal(1+entry.op.Params(), ins.Width(), entry.name)
	}
}

func TestDecode_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		word int
		err  error
	}){
		{"zero", 0, ErrOpcode(0)},
		{"ten", 10, ErrOpcode(0)},
		{"98", 98, ErrOpcode(0)},
		{"negative", -1, ErrOpcode(0)},
		{"mode_3", 301, ErrMode{}},
		{"mode_9_third", 90001, ErrMode{}},
		{"write_add", 10001, ErrWriteMode(0)},
		{"write_in", 103, ErrWriteMode(0)},
		{"write_eq", 11108, ErrWriteMode(0)},
	}

	for _, entry := range table {
		_, err := Decode(entry.word)
		assert.Error(err, entry.name)
		assert.True(errors.Is(err, entry.err), entry.name)
	}
}

func TestDecode_IgnoresUnusedDigits(t *testing.T) {
	assert := assert.New(t)

	// Halt has no parameters, so no mode digit is inspected.
	ins, err := Decode(99999)
	assert.NoError(err)
	assert.Equal(OP_HALT, ins.Op)
}

func TestOpcode_Params(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Opcode{OP_ADD, OP_MUL, OP_LESS_THAN, OP_EQUALS} {
		assert.Equal(3, op.Params(), op.String())
		assert.True(op.Writes(), op.String())
	}
	for _, op := range []Opcode{OP_INPUT, OP_OUTPUT, OP_ADJUST_BASE} {
		assert.Equal(1, op.Params(), op.String())
	}
	for _, op := range []Opcode{OP_JUMP_TRUE, OP_JUMP_FALSE} {
		assert.Equal(2, op.Params(), op.String())
		assert.False(op.Writes(), op.String())
	}
	assert.Equal(0, OP_HALT.Params())
	assert.False(Opcode(42).Valid())
	assert.Equal("Opcode(42)", Opcode(42).String())
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	ins, err := Decode(21101)
	assert.NoError(err)
	assert.Equal("add.i.i.r", ins.String())
	assert.Equal("add  1, 2, [rb-3]", ins.Format(1, 2, -3))

	ins, err = Decode(4)
	assert.NoError(err)
	assert.Equal("out  [7]", ins.Format(7))

	ins, err = Decode(99)
	assert.NoError(err)
	assert.Equal("halt", ins.Format())
}

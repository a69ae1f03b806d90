// Copyright 2024, dhruvmanila

package intcode

import (
	"fmt"
	"strings"
)

// Opcode is the operation code held in the two low decimal digits of an
// instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD         = Opcode(1)  // add
	OP_MUL         = Opcode(2)  // mul
	OP_INPUT       = Opcode(3)  // in
	OP_OUTPUT      = Opcode(4)  // out
	OP_JUMP_TRUE   = Opcode(5)  // jnz
	OP_JUMP_FALSE  = Opcode(6)  // jz
	OP_LESS_THAN   = Opcode(7)  // lt
	OP_EQUALS      = Opcode(8)  // eq
	OP_ADJUST_BASE = Opcode(9)  // arb
	OP_HALT        = Opcode(99) // halt
)

// opParams is the parameter count of every valid opcode.
var opParams = map[Opcode]int{
	OP_ADD:         3,
	OP_MUL:         3,
	OP_INPUT:       1,
	OP_OUTPUT:      1,
	OP_JUMP_TRUE:   2,
	OP_JUMP_FALSE:  2,
	OP_LESS_THAN:   3,
	OP_EQUALS:      3,
	OP_ADJUST_BASE: 1,
	OP_HALT:        0,
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opParams[op]
	return ok
}

// Params returns the number of parameters following the instruction word.
func (op Opcode) Params() int {
	return opParams[op]
}

// Writes returns true if the final parameter of the opcode is a destination.
func (op Opcode) Writes() bool {
	switch op {
	case OP_ADD, OP_MUL, OP_INPUT, OP_LESS_THAN, OP_EQUALS:
		return true
	}
	return false
}

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // p
	MODE_IMMEDIATE = Mode(1) // i
	MODE_RELATIVE  = Mode(2) // r
)

// MAX_PARAMS is the largest parameter count of any opcode.
const MAX_PARAMS = 3

// Instruction is a decoded instruction word.
type Instruction struct {
	Word  int
	Op    Opcode
	Modes [MAX_PARAMS]Mode
}

// Decode splits an instruction word into its opcode and parameter modes.
// Mode digits are read above the hundreds place, least significant first.
func Decode(word int) (ins Instruction, err error) {
	ins.Word = word

	if word < 0 {
		err = ErrOpcode(word)
		return
	}

	ins.Op = Opcode(word % 100)
	if !ins.Op.Valid() {
		err = ErrOpcode(word)
		return
	}

	digits := word / 100
	for n := range ins.Op.Params() {
		mode := Mode(digits % 10)
		digits /= 10
		switch mode {
		case MODE_POSITION, MODE_IMMEDIATE, MODE_RELATIVE:
			ins.Modes[n] = mode
		default:
			err = ErrMode{Word: word, Param: n}
			return
		}
	}

	if ins.Op.Writes() && ins.Modes[ins.Op.Params()-1] == MODE_IMMEDIATE {
		err = ErrWriteMode(word)
		return
	}

	return
}

// Width returns the number of memory cells the instruction occupies.
func (ins Instruction) Width() int {
	return 1 + ins.Op.Params()
}

// String returns the mnemonic and parameter modes, ie "add.p.i.r".
func (ins Instruction) String() string {
	parts := []string{ins.Op.String()}
	for n := range ins.Op.Params() {
		parts = append(parts, ins.Modes[n].String())
	}
	return strings.Join(parts, ".")
}

// Format renders the instruction with its raw parameters in assembly syntax.
// Immediate parameters are bare, position parameters are bracketed and
// relative parameters are offsets from 'rb'.
func (ins Instruction) Format(params ...int) string {
	var args []string
	for n := range min(len(params), ins.Op.Params()) {
		p := params[n]
		switch ins.Modes[n] {
		case MODE_IMMEDIATE:
			args = append(args, fmt.Sprintf("%d", p))
		case MODE_RELATIVE:
			args = append(args, fmt.Sprintf("[rb%+d]", p))
		default:
			args = append(args, fmt.Sprintf("[%d]", p))
		}
	}
	if len(args) == 0 {
		return ins.Op.String()
	}
	return fmt.Sprintf("%-4s %v", ins.Op.String(), strings.Join(args, ", "))
}

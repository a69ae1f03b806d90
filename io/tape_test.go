package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhruvmanila/intcode/intcode"
)

func TestTape_Input(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := NewTape(strings.NewReader("5\n\n -3 \nx\n"), output)

	value, err := tape.Input()
	assert.NoError(err)
	assert.Equal(5, value)

	value, err = tape.Input()
	assert.NoError(err)
	assert.Equal(-3, value)

	_, err = tape.Input()
	assert.Equal(ErrTapeValue("x"), err)

	_, err = tape.Input()
	assert.Equal(ErrTapeEmpty, err)

	assert.Equal("Input: Input: Input: Input: ", output.String())
}

func TestTape_Output(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Writer: output}

	assert.NoError(tape.Output(42))
	assert.NoError(tape.Output(-1))
	assert.Equal("Output: 42\nOutput: -1\n", output.String())

	silent := &Tape{}
	assert.NoError(silent.Output(1))
}

func TestTape_Machine(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := NewTape(strings.NewReader("8\n"), output)

	program, err := intcode.ParseString("3,9,8,9,10,9,4,9,99,-1,8")
	assert.NoError(err)

	vm, err := intcode.New(program, intcode.Config{
		Interactive: true,
		Prompt:      tape,
		Echo:        tape,
	})
	assert.NoError(err)

	ev := vm.Run()
	assert.Equal(intcode.EVENT_HALTED, ev.Kind)
	assert.Equal([]int{1}, vm.Outputs())
	assert.Equal("Input: Output: 1\n", output.String())
}

func TestTape_MachineEmpty(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape(strings.NewReader(""), nil)
	vm, err := intcode.New([]int{3, 0, 99}, intcode.Config{Interactive: true, Prompt: tape})
	assert.NoError(err)

	ev := vm.Run()
	assert.Equal(intcode.EVENT_FAULT, ev.Kind)
	assert.True(errors.Is(ev.Err, intcode.ErrPrompt))
	assert.True(errors.Is(ev.Err, ErrTapeEmpty))
}

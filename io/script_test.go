package io

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhruvmanila/intcode/intcode"
)

// Follows the ball with the paddle, from (x, y, tile) output triples.
const paddleScript = `
def on_input(outputs):
    ball = 0
    paddle = 0
    for n in range(0, len(outputs) - 2, 3):
        x, tile = outputs[n], outputs[n + 2]
        if tile == 4:
            ball = x
        elif tile == 3:
            paddle = x
    if ball < paddle:
        return -1
    if ball > paddle:
        return 1
    return 0
`

func TestScript_Input(t *testing.T) {
	assert := assert.New(t)

	sc, err := NewScript("paddle.star", paddleScript)
	assert.NoError(err)

	for _, value := range []int{2, 0, 3, 7, 0, 4} {
		assert.NoError(sc.Output(value))
	}
	value, err := sc.Input()
	assert.NoError(err)
	assert.Equal(1, value)

	sc.Reset()
	assert.Empty(sc.History())
	for _, value := range []int{9, 0, 3, 7, 0, 4} {
		assert.NoError(sc.Output(value))
	}
	value, err = sc.Input()
	assert.NoError(err)
	assert.Equal(-1, value)
	assert.Equal([]int{9, 0, 3, 7, 0, 4}, sc.History())
}

func TestScript_Missing(t *testing.T) {
	assert := assert.New(t)

	_, err := NewScript("empty.star", "x = 1\n")
	assert.Equal(ErrScriptMissing("on_input"), err)

	_, err = NewScript("broken.star", "def on_input(:\n")
	assert.Error(err)
}

func TestScript_Result(t *testing.T) {
	assert := assert.New(t)

	sc, err := NewScript("str.star", "def on_input(outputs):\n    return 'left'\n")
	assert.NoError(err)

	_, err = sc.Input()
	assert.Equal(ErrScriptResult, err)
}

func TestScript_OnOutput(t *testing.T) {
	assert := assert.New(t)

	source := "def on_input(outputs):\n    return 0\n\ndef on_output(value):\n    if value < 0:\n        fail('negative output')\n"
	sc, err := NewScript("check.star", source)
	assert.NoError(err)

	assert.NoError(sc.Output(1))
	assert.Error(sc.Output(-1))
}

func TestScript_Machine(t *testing.T) {
	assert := assert.New(t)

	// Draws a paddle at x=5 and a ball at x=2, reads a joystick position
	// and outputs it.
	program, err := intcode.ParseString("104,5,104,0,104,3,104,2,104,1,104,4,3,100,4,100,99")
	assert.NoError(err)

	sc, err := NewScript("paddle.star", paddleScript)
	assert.NoError(err)

	vm, err := intcode.New(program, intcode.Config{
		Interactive: true,
		Prompt:      sc,
		Echo:        sc,
	})
	assert.NoError(err)

	ev := vm.Run()
	assert.Equal(intcode.EVENT_HALTED, ev.Kind)
	assert.Equal([]int{5, 0, 3, 2, 1, 4, -1}, vm.Outputs())
}

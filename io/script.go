// Copyright 2024, dhruvmanila

package io

import (
	"log"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Script decides machine inputs with Starlark functions.
//
// The script must define on_input(outputs), called with the list of every
// value produced so far and returning the next input. It may define
// on_output(value), called as each value is produced.
type Script struct {
	Verbose bool // If set, logs each decision.

	thread   *starlark.Thread
	onInput  starlark.Callable
	onOutput starlark.Callable
	history  []int
}

// NewScript compiles and executes a Starlark script. The src is a string,
// []byte or io.Reader, or nil to read the named file.
func NewScript(filename string, src any) (sc *Script, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	onInput, ok := globals["on_input"].(starlark.Callable)
	if !ok {
		err = ErrScriptMissing("on_input")
		return
	}

	sc = &Script{
		thread:  thread,
		onInput: onInput,
	}

	if onOutput, ok := globals["on_output"].(starlark.Callable); ok {
		sc.onOutput = onOutput
	}

	return
}

// History returns every value recorded by Output.
func (sc *Script) History() []int {
	return slices.Clone(sc.history)
}

// Reset forgets the recorded outputs.
func (sc *Script) Reset() {
	sc.history = nil
}

// Input calls on_input with the output history.
func (sc *Script) Input() (value int, err error) {
	elems := make([]starlark.Value, len(sc.history))
	for n, out := range sc.history {
		elems[n] = starlark.MakeInt(out)
	}

	rc, err := starlark.Call(sc.thread, sc.onInput, starlark.Tuple{starlark.NewList(elems)}, nil)
	if err != nil {
		return
	}

	st_int, ok := rc.(starlark.Int)
	if !ok {
		err = ErrScriptResult
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrScriptResult
		return
	}
	value = int(st_int64)

	if sc.Verbose {
		log.Printf("%v: input %d after %d outputs", sc.thread.Name, value, len(sc.history))
	}

	return
}

// Output records a produced value and passes it to on_output, if defined.
func (sc *Script) Output(value int) (err error) {
	sc.history = append(sc.history, value)

	if sc.onOutput == nil {
		return
	}

	_, err = starlark.Call(sc.thread, sc.onOutput, starlark.Tuple{starlark.MakeInt(value)}, nil)
	return
}

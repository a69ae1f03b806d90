// Package io provides the external input sources and output sinks a host
// attaches to an Intcode machine. A Tape prompts a terminal (or any
// io.Reader/io.Writer pair) line by line, while a Script computes each input
// from the outputs seen so far with a Starlark function.
package io

import (
	"github.com/dhruvmanila/intcode/intcode"
)

// Channel is both an input source and an output sink for a machine.
type Channel interface {
	intcode.Prompter
	intcode.Echoer
}

var (
	_ Channel = (*Tape)(nil)
	_ Channel = (*Script)(nil)
)

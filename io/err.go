package io

import (
	"errors"

	"github.com/dhruvmanila/intcode/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeEmpty = errors.New(f("tape empty"))

	// Script errors
	ErrScriptResult = errors.New(f("on_input must return an int"))
)

// ErrTapeValue is a tape line that is not a decimal integer.
type ErrTapeValue string

func (err ErrTapeValue) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrScriptMissing is a required script function that is not defined.
type ErrScriptMissing string

func (err ErrScriptMissing) Error() string {
	return f("script does not define %v()", string(err))
}

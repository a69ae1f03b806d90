package intcode

import (
	"errors"

	"github.com/dhruvmanila/intcode/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrPromptMissing = errors.New(f("interactive input without prompt"))
	ErrPrompt        = errors.New(f("prompt failed"))
	ErrEcho          = errors.New(f("echo failed"))

	// Program text errors
	ErrProgramEmpty = errors.New(f("program empty"))
)

// ErrAddress is a reference to a negative memory address.
// Any ErrAddress matches any other under errors.Is.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %d invalid", int(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrOpcode is an instruction word whose low digits are not an opcode.
type ErrOpcode int

func (eo ErrOpcode) Error() string {
	return f("bad opcode %d in word %d", int(eo)%100, int(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrWriteMode is an instruction word with an immediate destination.
type ErrWriteMode int

func (ew ErrWriteMode) Error() string {
	return f("immediate destination in word %d", int(ew))
}

func (ew ErrWriteMode) Is(err error) (ok bool) {
	_, ok = err.(ErrWriteMode)
	return
}

// ErrMode is an instruction word with an unknown addressing mode digit.
type ErrMode struct {
	Word  int
	Param int
}

func (em ErrMode) Error() string {
	return f("bad mode for parameter %d in word %d", em.Param+1, em.Word)
}

func (em ErrMode) Is(err error) (ok bool) {
	_, ok = err.(ErrMode)
	return
}

// ErrFault indicates the instruction pointer of a fatal machine error.
type ErrFault struct {
	Ip  int
	Err error
}

func (err *ErrFault) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrParseNumber is a program text field that is not a decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

package network

import (
	"errors"

	"github.com/dhruvmanila/intcode/translate"
)

var f = translate.From

var (
	// Network errors
	ErrPhasesEmpty = errors.New(f("no phase settings"))
	ErrStalled     = errors.New(f("stage needs input without producing"))
	ErrNoSignal    = errors.New(f("stage halted without producing"))
)

// ErrStage indicates the network stage that failed.
type ErrStage struct {
	Index int
	Err   error
}

func (err *ErrStage) Error() string {
	return f("stage %d %v", err.Index, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}

package intcode

import (
	"fmt"
)

// State is the execution state of a machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_WAITING = State(1) // waiting
	STATE_HALTED  = State(2) // halted
	STATE_FAULTED = State(3) // faulted
)

// EventKind is the reason a machine returned control to its host.
type EventKind int

//go:generate go tool stringer -linecomment -type=EventKind
const (
	EVENT_NEEDS_INPUT = EventKind(0) // needs-input
	EVENT_PRODUCED    = EventKind(1) // produced
	EVENT_HALTED      = EventKind(2) // halted
	EVENT_FAULT       = EventKind(3) // fault
)

// Event is the result of a Run() or Step() of a machine.
type Event struct {
	Kind  EventKind
	Value int   // Produced value, for EVENT_PRODUCED.
	Err   error // Fatal error, for EVENT_FAULT.
}

// String returns the event as text.
func (ev Event) String() string {
	switch ev.Kind {
	case EVENT_PRODUCED:
		return fmt.Sprintf("%v(%d)", ev.Kind.String(), ev.Value)
	case EVENT_FAULT:
		return fmt.Sprintf("%v(%v)", ev.Kind.String(), ev.Err)
	}
	return ev.Kind.String()
}

// OutputPolicy selects how output instructions deliver their values.
type OutputPolicy int

//go:generate go tool stringer -linecomment -type=OutputPolicy
const (
	OUTPUT_BATCH     = OutputPolicy(0) // batch
	OUTPUT_STREAMING = OutputPolicy(1) // streaming
	OUTPUT_BOTH      = OutputPolicy(2) // both
)

// Streams returns true if the policy suspends the machine on every output.
func (op OutputPolicy) Streams() bool {
	return op == OUTPUT_STREAMING || op == OUTPUT_BOTH
}

// Gathers returns true if the policy accumulates outputs.
func (op OutputPolicy) Gathers() bool {
	return op == OUTPUT_BATCH || op == OUTPUT_BOTH
}

// Package intcode implements the Intcode virtual machine.
//
// A machine holds an instruction pointer (IP), a relative base, a memory of
// signed integers that grows on demand beyond the loaded program, an input
// queue and an output policy. Instructions carry a two digit opcode and one
// addressing mode digit per parameter: position, immediate or relative.
//
// Machines are driven by their host through Run(), which returns an Event
// whenever the machine needs input, produces a value under a streaming
// policy, halts or faults. After EVENT_NEEDS_INPUT the host appends input and
// calls Run() again; the input instruction is retried unchanged.
package intcode

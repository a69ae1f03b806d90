// Copyright 2024, dhruvmanila

package intcode

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

// Prompter supplies input values when a machine runs interactively.
type Prompter interface {
	Input() (value int, err error)
}

// Echoer receives every value a machine produces.
type Echoer interface {
	Output(value int) error
}

// Config is the construction-time configuration of a machine.
type Config struct {
	Inputs      []int        // Initial input queue.
	Output      OutputPolicy // Output policy, OUTPUT_BATCH if unset.
	Interactive bool         // If set, input instructions read from Prompt.
	Prompt      Prompter     // Interactive input source.
	Echo        Echoer       // If set, receives every produced value.
	Verbose     bool         // If set, enables verbose logging.
}

// Machine is an Intcode virtual machine.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Ticks int // Instructions executed since construction or reset.

	memory  *Memory
	ip      int
	base    int
	inputs  []int
	outputs []int
	state   State
	fault   *ErrFault

	program []int
	config  Config
}

// New creates a machine holding its own copy of the program.
func New(program []int, config Config) (vm *Machine, err error) {
	if config.Interactive && config.Prompt == nil {
		err = ErrPromptMissing
		return
	}

	config.Inputs = slices.Clone(config.Inputs)

	vm = &Machine{
		Verbose: config.Verbose,
		program: slices.Clone(program),
		config:  config,
	}
	vm.Reset()

	return
}

// Reset restores memory, registers and the input queue to their state at
// construction, and clears outputs and any fault.
func (vm *Machine) Reset() {
	if vm.Verbose {
		log.Printf("intcode: reset")
	}

	vm.memory = NewMemory(vm.program)
	vm.ip = 0
	vm.base = 0
	vm.inputs = slices.Clone(vm.config.Inputs)
	vm.outputs = nil
	vm.state = STATE_RUNNING
	vm.fault = nil
	vm.Ticks = 0
}

// AppendInput adds values to the back of the input queue.
func (vm *Machine) AppendInput(values ...int) {
	vm.inputs = append(vm.inputs, values...)
}

// Pending returns the number of queued input values.
func (vm *Machine) Pending() int {
	return len(vm.inputs)
}

// Halted returns true once the halt instruction has executed.
func (vm *Machine) Halted() bool {
	return vm.state == STATE_HALTED
}

// State returns the current execution state.
func (vm *Machine) State() State {
	return vm.state
}

// Ip returns the current instruction pointer.
func (vm *Machine) Ip() int {
	return vm.ip
}

// RelativeBase returns the current relative base.
func (vm *Machine) RelativeBase() int {
	return vm.base
}

// Outputs returns the values accumulated under a gathering output policy.
func (vm *Machine) Outputs() []int {
	return slices.Clone(vm.outputs)
}

// Read returns the value of a memory cell.
func (vm *Machine) Read(addr int) (int, error) {
	return vm.memory.Read(addr)
}

// Write sets the value of a memory cell.
func (vm *Machine) Write(addr int, value int) error {
	return vm.memory.Write(addr, value)
}

// Memory returns a copy of the machine memory.
func (vm *Machine) Memory() *Memory {
	return vm.memory.Clone()
}

// String returns the current machine state as a string.
func (vm *Machine) String() (text string) {
	text += fmt.Sprintf("% 7s: %v\n", "state", vm.state)
	text += fmt.Sprintf("% 7s: %d\n", "ip", vm.ip)
	text += fmt.Sprintf("% 7s: %d\n", "rb", vm.base)
	text += fmt.Sprintf("% 7s: %v\n", "inputs", vm.inputs)
	text += fmt.Sprintf("% 7s: %v\n", "outputs", vm.outputs)
	if vm.fault != nil {
		text += fmt.Sprintf("% 7s: %v\n", "fault", vm.fault)
	}
	return
}

// Run executes instructions until the machine needs input, produces a
// value under a streaming policy, halts or faults.
func (vm *Machine) Run() (ev Event) {
	for {
		var ok bool
		ev, ok = vm.Step()
		if ok {
			return
		}
	}
}

// Step executes a single instruction. The event is only valid if ok is set.
func (vm *Machine) Step() (ev Event, ok bool) {
	switch vm.state {
	case STATE_HALTED:
		return Event{Kind: EVENT_HALTED}, true
	case STATE_FAULTED:
		return Event{Kind: EVENT_FAULT, Err: vm.fault}, true
	}

	ev, ok, err := vm.execute()
	if err != nil {
		vm.state = STATE_FAULTED
		vm.fault = &ErrFault{Ip: vm.ip, Err: err}
		if vm.Verbose {
			log.Printf("intcode: %v", vm.fault)
		}
		return Event{Kind: EVENT_FAULT, Err: vm.fault}, true
	}

	return
}

// fetch decodes the instruction at the instruction pointer, and its
// raw parameters.
func (vm *Machine) fetch() (ins Instruction, params [MAX_PARAMS]int, err error) {
	word, err := vm.memory.Read(vm.ip)
	if err != nil {
		return
	}

	ins, err = Decode(word)
	if err != nil {
		return
	}

	for n := range ins.Op.Params() {
		params[n], err = vm.memory.Read(vm.ip + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// load resolves a source parameter to its value.
func (vm *Machine) load(ins Instruction, params [MAX_PARAMS]int, n int) (value int, err error) {
	switch ins.Modes[n] {
	case MODE_IMMEDIATE:
		value = params[n]
	case MODE_RELATIVE:
		value, err = vm.memory.Read(vm.base + params[n])
	default:
		value, err = vm.memory.Read(params[n])
	}
	return
}

// store writes a value to the address of a destination parameter.
func (vm *Machine) store(ins Instruction, params [MAX_PARAMS]int, n int, value int) (err error) {
	switch ins.Modes[n] {
	case MODE_IMMEDIATE:
		err = ErrWriteMode(ins.Word)
	case MODE_RELATIVE:
		err = vm.memory.Write(vm.base+params[n], value)
	default:
		err = vm.memory.Write(params[n], value)
	}
	return
}

// execute runs the instruction at the instruction pointer.
func (vm *Machine) execute() (ev Event, ok bool, err error) {
	ins, params, err := vm.fetch()
	if err != nil {
		return
	}

	if vm.Verbose {
		log.Printf("%04d: %v", vm.ip, ins.Format(params[:ins.Op.Params()]...))
	}

	next_ip := vm.ip + ins.Width()

	var a, b int
	switch ins.Op {
	case OP_ADD, OP_MUL, OP_LESS_THAN, OP_EQUALS, OP_JUMP_TRUE, OP_JUMP_FALSE:
		a, err = vm.load(ins, params, 0)
		if err != nil {
			return
		}
		b, err = vm.load(ins, params, 1)
		if err != nil {
			return
		}
	case OP_OUTPUT, OP_ADJUST_BASE:
		a, err = vm.load(ins, params, 0)
		if err != nil {
			return
		}
	}

	switch ins.Op {
	case OP_ADD:
		err = vm.store(ins, params, 2, a+b)
	case OP_MUL:
		err = vm.store(ins, params, 2, a*b)
	case OP_LESS_THAN:
		err = vm.store(ins, params, 2, truth(a < b))
	case OP_EQUALS:
		err = vm.store(ins, params, 2, truth(a == b))
	case OP_JUMP_TRUE:
		if a != 0 {
			next_ip = b
		}
	case OP_JUMP_FALSE:
		if a == 0 {
			next_ip = b
		}
	case OP_ADJUST_BASE:
		vm.base += a
	case OP_INPUT:
		var value int
		if vm.config.Interactive {
			value, err = vm.config.Prompt.Input()
			if err != nil {
				err = errors.Join(ErrPrompt, err)
				return
			}
		} else if len(vm.inputs) == 0 {
			// Don't advance to next IP.
			if vm.Verbose && vm.state != STATE_WAITING {
				log.Printf("intcode: waiting for input at %d", vm.ip)
			}
			vm.state = STATE_WAITING
			return Event{Kind: EVENT_NEEDS_INPUT}, true, nil
		} else {
			value = vm.inputs[0]
		}
		err = vm.store(ins, params, 0, value)
		if err != nil {
			return
		}
		if !vm.config.Interactive {
			vm.inputs = vm.inputs[1:]
		}
		vm.state = STATE_RUNNING
	case OP_OUTPUT:
		if vm.config.Echo != nil {
			err = vm.config.Echo.Output(a)
			if err != nil {
				err = errors.Join(ErrEcho, err)
				return
			}
		}
		if vm.config.Output.Gathers() {
			vm.outputs = append(vm.outputs, a)
		}
		if vm.config.Output.Streams() {
			ev = Event{Kind: EVENT_PRODUCED, Value: a}
			ok = true
		}
	case OP_HALT:
		vm.state = STATE_HALTED
		vm.Ticks += 1
		return Event{Kind: EVENT_HALTED}, true, nil
	}
	if err != nil {
		return
	}

	vm.ip = next_ip
	vm.Ticks += 1

	return
}

// truth converts a comparison to its integer value.
func truth(cond bool) int {
	if cond {
		return 1
	}
	return 0
}

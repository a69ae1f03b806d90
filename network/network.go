// Copyright 2024, dhruvmanila

// Package network wires Intcode machines together, each stage's output
// becoming the next stage's input.
package network

import (
	"log"

	"github.com/dhruvmanila/intcode/intcode"
)

// Network is a series of machines running the same program, each seeded
// with its own phase setting.
type Network struct {
	Verbose  bool               // If set, enables verbose logging.
	Feedback bool               // If set, the last stage feeds the first.
	Stages   []*intcode.Machine // Machines, in signal order.
}

// newNetwork creates one streaming machine per phase setting.
func newNetwork(program []int, feedback bool, phases ...int) (net *Network, err error) {
	if len(phases) == 0 {
		err = ErrPhasesEmpty
		return
	}

	net = &Network{Feedback: feedback}
	for _, phase := range phases {
		var vm *intcode.Machine
		vm, err = intcode.New(program, intcode.Config{
			Inputs: []int{phase},
			Output: intcode.OUTPUT_STREAMING,
		})
		if err != nil {
			net = nil
			return
		}
		net.Stages = append(net.Stages, vm)
	}

	return
}

// NewChain creates a network that passes a signal through each stage once.
func NewChain(program []int, phases ...int) (*Network, error) {
	return newNetwork(program, false, phases...)
}

// NewRing creates a network in which the last stage feeds the first, until
// a stage halts.
func NewRing(program []int, phases ...int) (*Network, error) {
	return newNetwork(program, true, phases...)
}

// Reset every stage to its construction state.
func (net *Network) Reset() {
	for _, stage := range net.Stages {
		stage.Verbose = net.Verbose
		stage.Reset()
	}
}

// drain runs the stages following a halted ring stage, so that each
// executes its own halt.
func (net *Network) drain(from int) (err error) {
	for n := from; n < len(net.Stages); n++ {
		ev := net.Stages[n].Run()
		switch ev.Kind {
		case intcode.EVENT_HALTED:
			if net.Verbose {
				log.Printf("network: stage %d halted", n)
			}
		case intcode.EVENT_FAULT:
			err = &ErrStage{Index: n, Err: ev.Err}
			return
		}
	}
	return
}

// Run resets the network, then feeds the signal to the first stage. It
// returns the last value produced by the final stage. When a ring stage
// halts, the later stages are run once more to reach their own halt.
func (net *Network) Run(signal int) (output int, err error) {
	net.Reset()

	last := len(net.Stages) - 1
	produced := false

	for {
		for n, stage := range net.Stages {
			stage.AppendInput(signal)

			ev := stage.Run()
			switch ev.Kind {
			case intcode.EVENT_PRODUCED:
				signal = ev.Value
				if net.Verbose {
					log.Printf("network: stage %d produced %d", n, signal)
				}
				if n == last {
					output = signal
					produced = true
				}
			case intcode.EVENT_HALTED:
				if net.Verbose {
					log.Printf("network: stage %d halted", n)
				}
				if !produced {
					err = &ErrStage{Index: n, Err: ErrNoSignal}
					return
				}
				if net.Feedback {
					err = net.drain(n + 1)
				}
				return
			case intcode.EVENT_NEEDS_INPUT:
				err = &ErrStage{Index: n, Err: ErrStalled}
				return
			case intcode.EVENT_FAULT:
				err = &ErrStage{Index: n, Err: ev.Err}
				return
			}
		}

		if !net.Feedback {
			return
		}
	}
}

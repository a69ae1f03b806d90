// Copyright 2024, dhruvmanila

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dhruvmanila/intcode/intcode"
	"github.com/dhruvmanila/intcode/io"
	"github.com/dhruvmanila/intcode/network"
)

var ErrTapeStdin = errors.New("-t reads the tape from stdin, so -p must name a program file")

// checkSources rejects flag combinations that read stdin twice.
func checkSources(programFile string, interactive bool) (err error) {
	if interactive && programFile == "-" {
		err = ErrTapeStdin
	}
	return
}

func main() {
	var programFile string
	var inputs string
	var interactive bool
	var script string
	var policy string
	var patch string
	var dump int
	var list bool
	var search string
	var feedback bool
	var verbose bool

	flag.StringVar(&programFile, "p", "-", "Intcode program text")
	flag.StringVar(&inputs, "i", "", "Comma separated initial inputs")
	flag.BoolVar(&interactive, "t", false, "Prompt the terminal for input")
	flag.StringVar(&script, "s", "", ".star script deciding inputs")
	flag.StringVar(&policy, "m", "batch", "Output policy: batch, streaming or both")
	flag.StringVar(&patch, "w", "", "Memory patches before running, ie 0=2,1=12")
	flag.IntVar(&dump, "a", -1, "Memory address to print after halting")
	flag.BoolVar(&list, "l", false, "List the program, do not execute")
	flag.StringVar(&search, "n", "", "Comma separated phase settings to search")
	flag.BoolVar(&feedback, "f", false, "Search with a feedback ring")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	err := checkSources(programFile, interactive && len(script) == 0)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	program, err := loadProgram(programFile)
	if err != nil {
		log.Fatalf("%v: %v", programFile, err)
	}

	if list {
		for addr, l := range intcode.Disassemble(program) {
			fmt.Printf("%04d: %v\n", addr, l)
		}
		return
	}

	if len(search) != 0 {
		phases, err := intcode.ParseString(search)
		if err != nil {
			log.Fatalf("-n: %v", err)
		}
		best, err := network.Search(context.Background(), program, phases, feedback)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d %v\n", best.Signal, intcode.Format(best.Phases))
		return
	}

	config := intcode.Config{Verbose: verbose}

	if len(inputs) != 0 {
		config.Inputs, err = intcode.ParseString(inputs)
		if err != nil {
			log.Fatalf("-i: %v", err)
		}
	}

	switch policy {
	case intcode.OUTPUT_BATCH.String():
		config.Output = intcode.OUTPUT_BATCH
	case intcode.OUTPUT_STREAMING.String():
		config.Output = intcode.OUTPUT_STREAMING
	case intcode.OUTPUT_BOTH.String():
		config.Output = intcode.OUTPUT_BOTH
	default:
		log.Fatalf("-m: unknown output policy %v", policy)
	}

	switch {
	case len(script) != 0:
		sc, err := io.NewScript(script, nil)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		sc.Verbose = verbose
		config.Interactive = true
		config.Prompt = sc
		config.Echo = sc
	case interactive:
		tape := io.NewTape(os.Stdin, os.Stdout)
		config.Interactive = true
		config.Prompt = tape
		config.Echo = tape
	}

	vm, err := intcode.New(program, config)
	if err != nil {
		log.Fatal(err)
	}

	err = applyPatches(vm, patch)
	if err != nil {
		log.Fatalf("-w: %v", err)
	}

	for done := false; !done; {
		ev := vm.Run()
		switch ev.Kind {
		case intcode.EVENT_PRODUCED:
			if !config.Interactive {
				fmt.Println(ev.Value)
			}
		case intcode.EVENT_NEEDS_INPUT:
			log.Fatalf("%v: input exhausted at ip %d", programFile, vm.Ip())
		case intcode.EVENT_FAULT:
			if verbose {
				log.Print(vm.String())
			}
			log.Fatal(ev.Err)
		case intcode.EVENT_HALTED:
			done = true
		}
	}

	if config.Output.Gathers() && !config.Interactive {
		for _, value := range vm.Outputs() {
			fmt.Println(value)
		}
	}

	if dump >= 0 {
		value, err := vm.Read(dump)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("[%d] = %d\n", dump, value)
	}
}

// loadProgram reads program text from a file, or stdin for "-".
func loadProgram(name string) (program []int, err error) {
	if name == "-" {
		return intcode.Parse(os.Stdin)
	}

	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return intcode.Parse(inf)
}

// applyPatches writes addr=value pairs into machine memory.
func applyPatches(vm *intcode.Machine, patch string) (err error) {
	if len(patch) == 0 {
		return
	}

	for _, pair := range strings.Split(patch, ",") {
		addr, value, ok := strings.Cut(pair, "=")
		if !ok {
			err = fmt.Errorf("'%v' is not addr=value", pair)
			return
		}
		var cells []int
		cells, err = intcode.ParseString(addr + "," + value)
		if err != nil {
			return
		}
		err = vm.Write(cells[0], cells[1])
		if err != nil {
			return
		}
	}

	return
}

package intcode

import (
	"io"
	"iter"
	"strconv"
	"strings"
)

// Parse reads program text: comma separated signed decimal integers.
// Surrounding whitespace, including line breaks, is ignored.
func Parse(in io.Reader) (program []int, err error) {
	text, err := io.ReadAll(in)
	if err != nil {
		return
	}

	return ParseString(string(text))
}

// ParseString parses program text held in a string.
func ParseString(text string) (program []int, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		var value int
		value, err = strconv.Atoi(field)
		if err != nil {
			err = ErrParseNumber(field)
			program = nil
			return
		}
		program = append(program, value)
	}

	return
}

// Format renders a program as program text.
func Format(program []int) string {
	fields := make([]string, len(program))
	for n, value := range program {
		fields[n] = strconv.Itoa(value)
	}
	return strings.Join(fields, ",")
}

// Listing is a disassembled instruction and its raw parameters.
type Listing struct {
	Instruction
	Params []int
}

// String returns the listing in assembly syntax.
func (l Listing) String() string {
	return l.Instruction.Format(l.Params...)
}

// Disassemble returns an iterator over the instructions of a program, keyed
// by address. Words that do not decode are skipped one at a time.
func Disassemble(program []int) iter.Seq2[int, Listing] {
	return func(yield func(addr int, l Listing) bool) {
		for addr := 0; addr < len(program); {
			ins, err := Decode(program[addr])
			if err != nil || addr+ins.Width() > len(program) {
				addr++
				continue
			}
			l := Listing{
				Instruction: ins,
				Params:      program[addr+1 : addr+ins.Width()],
			}
			if !yield(addr, l) {
				return
			}
			addr += ins.Width()
		}
	}
}

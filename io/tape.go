package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tape provides line oriented terminal I/O for a machine. Each input is
// read as one decimal integer per line from Reader after writing the prompt
// to Writer; each output is written to Writer.
type Tape struct {
	Reader io.Reader
	Writer io.Writer

	scanner *bufio.Scanner
}

// NewTape creates a tape over an input reader and output writer.
func NewTape(reader io.Reader, writer io.Writer) *Tape {
	return &Tape{Reader: reader, Writer: writer}
}

// Input prompts for, and reads, the next integer. Blank lines are skipped.
func (tc *Tape) Input() (value int, err error) {
	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Reader)
	}

	if tc.Writer != nil {
		_, err = io.WriteString(tc.Writer, "Input: ")
		if err != nil {
			return
		}
	}

	for tc.scanner.Scan() {
		line := strings.TrimSpace(tc.scanner.Text())
		if len(line) == 0 {
			continue
		}
		value, err = strconv.Atoi(line)
		if err != nil {
			err = ErrTapeValue(line)
		}
		return
	}

	err = tc.scanner.Err()
	if err == nil {
		err = ErrTapeEmpty
	}

	return
}

// Output writes a produced value.
func (tc *Tape) Output(value int) (err error) {
	if tc.Writer == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Writer, "Output: %d\n", value)
	return
}

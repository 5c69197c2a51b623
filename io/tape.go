package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Tape provides console I/O over byte streams.
// It wraps an io.Reader for input and io.Writer for output, converting
// between integers and whitespace separated decimal text.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt bool // If set, '[INP] ' is written before each read.

	reader *bufio.Reader
	tokens []string
}

var _ Console = (*Tape)(nil)

// ParseInteger parses a decimal token as a 32-bit word.
// Values from -2^31 to 2^32-1 are accepted; unsigned values wrap.
func ParseInteger(token string) (value int32, err error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil || v < math.MinInt32 || v > math.MaxUint32 {
		err = ErrNotInteger
		return
	}

	value = int32(v)
	return
}

// Rewind drops any buffered input.
func (tc *Tape) Rewind() {
	tc.reader = nil
	tc.tokens = nil
}

func (tc *Tape) prompt() {
	if tc.Prompt && tc.Output != nil {
		fmt.Fprintf(tc.Output, "%v ", f("[INP]"))
	}
}

// next returns the next whitespace separated token of the input.
func (tc *Tape) next() (token string, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	for len(tc.tokens) == 0 {
		if tc.reader == nil {
			tc.reader = bufio.NewReader(tc.Input)
		}
		var line string
		line, err = tc.reader.ReadString('\n')
		tc.tokens = strings.Fields(line)
		if err != nil {
			if errors.Is(err, io.EOF) && len(tc.tokens) > 0 {
				err = nil
				break
			}
			return
		}
	}

	token = tc.tokens[0]
	tc.tokens = tc.tokens[1:]
	return
}

// ReadInteger reads the next integer, re-prompting on malformed input
// until one is supplied.
func (tc *Tape) ReadInteger() (value int32, err error) {
	tc.prompt()
	for {
		var token string
		token, err = tc.next()
		if err != nil {
			return
		}

		value, err = ParseInteger(token)
		if err == nil {
			return
		}

		// Discard the rest of the line, and try again.
		tc.Diagnostic(err)
		tc.tokens = nil
		tc.prompt()
	}
}

// WriteInteger writes an '[OUT] value' line.
func (tc *Tape) WriteInteger(value int32) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%v %d\n", f("[OUT]"), value)
	return
}

// Diagnostic writes an '[ERR] message' line.
func (tc *Tape) Diagnostic(err error) {
	if tc.Output == nil {
		return
	}

	fmt.Fprintf(tc.Output, "%v %v\n", f("[ERR]"), err)
}

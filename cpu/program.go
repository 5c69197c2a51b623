package cpu

import (
	"iter"
)

// Program is a listing of instruction words, loaded from address 0.
type Program struct {
	Codes []Code
}

// NewProgram creates a program from an image of words.
func NewProgram(words []uint32) (prog *Program) {
	prog = &Program{
		Codes: make([]Code, len(words)),
	}
	for n, word := range words {
		prog.Codes[n] = Code(word)
	}

	return
}

// Debug returns the program's code at ip, if the program covers it.
func (prog *Program) Debug(ip uint16) (code Code, ok bool) {
	if int(ip) < len(prog.Codes) {
		code = prog.Codes[ip]
		ok = true
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []uint32) {
	for _, code := range prog.Codes {
		bins = append(bins, uint32(code))
	}

	return
}

// Listing iterates over the program's addresses and codes.
func (prog *Program) Listing() iter.Seq2[uint16, Code] {
	return func(yield func(ip uint16, code Code) bool) {
		for n, code := range prog.Codes {
			if !yield(uint16(n), code) {
				return
			}
		}
	}
}

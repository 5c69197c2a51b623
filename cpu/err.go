package cpu

import (
	"errors"
	"fmt"

	"github.com/ezrec/lmcpp/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted    = errors.New(f("halted"))
	ErrConsole   = errors.New(f("console"))
	ErrImageSize = errors.New(f("image exceeds memory"))
)

// ErrOpcode reports an instruction with an unrecognized opcode.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	op := Code(eo).Decode().Op
	return f("unrecognized instruction %v (%v)", fmt.Sprintf("%05b", int(op)), fmt.Sprintf("0x%08x", uint32(eo)))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

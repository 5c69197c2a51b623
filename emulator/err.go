package emulator

import (
	"errors"
	"fmt"

	"github.com/ezrec/lmcpp/translate"
)

var f = translate.From

var (
	ErrBreakpoint = errors.New(f("watch expression true"))
	ErrWatch      = errors.New(f("watch expression"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %v %v", fmt.Sprintf("%04x", err.Ip), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

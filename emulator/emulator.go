// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/lmcpp/cpu"
	"github.com/ezrec/lmcpp/internal"
	"github.com/ezrec/lmcpp/io"
)

// Emulator state. CPU + program + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program.

	Tape  io.Tape // Console channel, used by the CPU unless replaced.
	Watch *Watch  // If set, stops the run when true.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Tape)

	return
}

// Defines returns an iterator over the names visible to watch expressions:
// the lower case register names, pc and ticks.
func (emu *Emulator) Defines() iter.Seq2[string, int32] {
	registers := internal.IterSeq2MapKeys(emu.Cpu.All(), func(reg cpu.CodeReg) string {
		return strings.ToLower(reg.String())
	})

	return internal.IterSeq2Concat(
		registers,
		maps.All(map[string]int32{
			"pc":    int32(emu.Ip()),
			"ticks": int32(emu.Cpu.Ticks),
		}),
	)
}

// SetWatch compiles and installs a watch expression. An empty expression
// removes the watch.
func (emu *Emulator) SetWatch(expr string) (err error) {
	if len(expr) == 0 {
		emu.Watch = nil
		return
	}

	watch, err := NewWatch(expr, emu.Defines())
	if err != nil {
		return
	}

	emu.Watch = watch
	return
}

// Reset the emulator, loading the program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Tape.Rewind()

	err = emu.Cpu.Reset(emu.Program.Binary())
	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns the address of the next instruction.
func (emu *Emulator) Ip() uint16 {
	return uint16(emu.Cpu.Pc())
}

// Code returns the next instruction to execute.
func (emu *Emulator) Code() cpu.Code {
	return cpu.Code(emu.Cpu.Memory.Read(emu.Ip()))
}

// Tick performs a single tick of the emulator.
// Unrecognized instructions are reported to the console, and do not stop
// the run.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Ip()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
		}
	}()

	if emu.Cpu.Halted {
		done = true
		return
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrOpcode(0)) {
		if emu.Cpu.Console != nil {
			emu.Cpu.Console.Diagnostic(err)
		}
		err = nil
	}
	if err != nil {
		return
	}

	if emu.Cpu.Halted {
		done = true
		return
	}

	if emu.Watch != nil {
		var hit bool
		hit, err = emu.Watch.Eval(emu.Defines())
		if err != nil {
			return
		}
		if hit {
			done = true
			err = ErrBreakpoint
			return
		}
	}

	return
}

// Run ticks the emulator until the CPU halts, or an error occurs.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

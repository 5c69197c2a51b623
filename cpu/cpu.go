// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/lmcpp/io"
)

// Console is the integer console consulted by INP and OUT.
type Console = io.Console

// Cpu is the simulation context for the LMC++ machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers         // Register file. System[0] is the program counter.
	Memory    *Memory // Program and data memory.
	Console   Console // Console for INP and OUT.

	Halted bool // Set once HLT has executed.
	Ticks  int  // CPU ticks counter.
}

// NewCpu creates a new CPU with cleared memory.
func NewCpu(console Console) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:  &Memory{},
		Console: console,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	state := "running"
	if cpu.Halted {
		state = "halted"
	}

	text = fmt.Sprintf("   pc: %04X (%v, %d ticks)\n", uint16(cpu.Pc()), state, cpu.Ticks)
	text += cpu.Registers.String()

	return
}

// Reset the CPU state.
// - Loads the image into memory, zero filling the rest.
// - Clears both register banks; execution restarts at address 0.
// - Zeros statistics counters.
func (cpu *Cpu) Reset(image []uint32) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset, %d word image", len(image))
	}

	err = cpu.Memory.Load(image)
	if err != nil {
		return
	}

	cpu.Registers.Reset()
	cpu.Halted = false
	cpu.Ticks = 0

	return
}

// FetchCode fetches the instruction at the program counter, and advances
// the program counter.
func (cpu *Cpu) FetchCode() (code Code) {
	pc := cpu.Pc()
	code = Code(cpu.Memory.Read(uint16(pc)))
	cpu.SetPc(pc + 1)
	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	ip := uint16(cpu.Pc())
	code := cpu.FetchCode()

	if cpu.Verbose {
		log.Printf("%04x: %v", ip, code)
	}

	cpu.Ticks += 1

	err = cpu.Execute(code)
	return
}

// Execute executes a single instruction. The program counter must already
// be past the instruction.
//
// An unrecognized opcode returns ErrOpcode, and changes no state.
func (cpu *Cpu) Execute(code Code) (err error) {
	dec := code.Decode()
	dst := dec.Dst()
	src := dec.Src()

	switch dec.Op {
	case OP_HLT:
		cpu.Halted = true
	case OP_LDR:
		cpu.Set(dst, int32(cpu.Memory.Read(cpu.address(dec))))
	case OP_STR:
		cpu.Memory.Write(cpu.address(dec), uint32(cpu.Get(dst)))
	case OP_INP:
		if cpu.Console == nil {
			err = ErrConsole
			return
		}
		var value int32
		value, err = cpu.Console.ReadInteger()
		if err != nil {
			err = errors.Join(ErrConsole, err)
			return
		}
		cpu.Set(dst, value)
	case OP_OUT:
		if cpu.Console == nil {
			err = ErrConsole
			return
		}
		err = cpu.Console.WriteInteger(cpu.Get(dst))
		if err != nil {
			err = errors.Join(ErrConsole, err)
			return
		}
	case OP_CPR:
		cpu.Set(dst, cpu.Get(src))
	case OP_CPV:
		cpu.Set(dst, int32(dec.Location))
	case OP_ADD, OP_SUB, OP_LSL, OP_LSR, OP_AND, OP_ORR, OP_XOR:
		cpu.Set(dst, cpu.doAlu(dec.Op, cpu.Get(dst), cpu.Get(src)))
	case OP_NOT:
		// The source bank flag is not consulted.
		cpu.Set(dst, ^cpu.Get(dst))
	case OP_BRA:
		cpu.SetPc(int32(dec.Location))
	case OP_BRZ:
		if cpu.Get(dst) == 0 {
			cpu.SetPc(int32(dec.Location))
		}
	case OP_BRP:
		if (uint32(cpu.Get(dst)) & (1 << 31)) == 0 {
			cpu.SetPc(int32(dec.Location))
		}
	default:
		err = ErrOpcode(code)
		return
	}

	return
}

// address returns the LDR/STR memory address: the value of Rm if
// indirect, else the location.
func (cpu *Cpu) address(dec Decoded) uint16 {
	if dec.Flg2 {
		return uint16(cpu.Get(dec.Src()))
	}
	return dec.Location
}

// doAlu performs the requested ALU action, and returns the output value.
func (cpu *Cpu) doAlu(op CodeOp, input int32, value int32) (output int32) {
	switch op {
	case OP_ADD:
		output = input + value
	case OP_SUB:
		output = input - value
	case OP_LSL:
		output = input << (uint32(value) & 0x1f) // clamp to 31 bits of shift
	case OP_LSR:
		output = input >> (uint32(value) & 0x1f) // clamp to 31 bits of shift
	case OP_AND:
		output = input & value
	case OP_ORR:
		output = input | value
	case OP_XOR:
		output = input ^ value
	}

	return
}

package cpu

import (
	"fmt"
	"iter"
)

// Bank is a register bank.
type Bank int

const (
	BANK_GENERAL = Bank(0) // General purpose registers, R0-R15.
	BANK_SYSTEM  = Bank(1) // System registers, S0-S15. S0 is the program counter.
)

// String returns the name of the bank.
func (bank Bank) String() string {
	if bank == BANK_SYSTEM {
		return "system"
	}
	return "general"
}

// BankFor resolves an instruction flag bit to a register bank.
func BankFor(flag bool) Bank {
	if flag {
		return BANK_SYSTEM
	}
	return BANK_GENERAL
}

// Registers is the register file: two banks of signed 32-bit registers.
type Registers struct {
	General [CODE_REGISTER_COUNT]int32
	System  [CODE_REGISTER_COUNT]int32
}

func (r *Registers) bank(bank Bank) *[CODE_REGISTER_COUNT]int32 {
	if bank == BANK_SYSTEM {
		return &r.System
	}
	return &r.General
}

// Read returns the value of a register.
func (r *Registers) Read(bank Bank, index uint8) int32 {
	return r.bank(bank)[index&0xf]
}

// Write sets the value of a register.
func (r *Registers) Write(bank Bank, index uint8, value int32) {
	r.bank(bank)[index&0xf] = value
}

// Get returns the value of the selected register.
func (r *Registers) Get(reg CodeReg) int32 {
	return r.Read(reg.Bank(), reg.Index())
}

// Set sets the value of the selected register.
func (r *Registers) Set(reg CodeReg, value int32) {
	r.Write(reg.Bank(), reg.Index(), value)
}

// Pc returns the program counter.
func (r *Registers) Pc() int32 {
	return r.System[0]
}

// SetPc sets the program counter.
func (r *Registers) SetPc(pc int32) {
	r.System[0] = pc
}

// Reset clears both banks.
func (r *Registers) Reset() {
	clear(r.General[:])
	clear(r.System[:])
}

// All iterates over every register, general bank first.
func (r *Registers) All() iter.Seq2[CodeReg, int32] {
	return func(yield func(reg CodeReg, value int32) bool) {
		for _, bank := range []Bank{BANK_GENERAL, BANK_SYSTEM} {
			for index, value := range r.bank(bank) {
				if !yield(MakeReg(bank, uint8(index)), value) {
					return
				}
			}
		}
	}
}

// String returns the register file as text, one bank row pair per line.
func (r *Registers) String() (text string) {
	for reg, value := range r.All() {
		text += fmt.Sprintf("% 4s: %08X", reg.String(), uint32(value))
		if reg.Index()%4 == 3 {
			text += "\n"
		} else {
			text += "  "
		}
	}
	return
}

package cpu

import (
	"fmt"
)

// CodeOp is the 5-bit operation selector of an instruction.
type CodeOp int

const (
	OP_HLT = CodeOp(0b00000) // Halt
	OP_LDR = CodeOp(0b00010) // Load memory into Rn
	OP_STR = CodeOp(0b00011) // Store Rn into memory
	OP_INP = CodeOp(0b00100) // Store console input in Rn
	OP_OUT = CodeOp(0b00101) // Output Rn to console
	OP_CPR = CodeOp(0b00110) // Copy Rm into Rn
	OP_CPV = CodeOp(0b00111) // Copy location into Rn
	OP_ADD = CodeOp(0b01000) // Rn += Rm
	OP_SUB = CodeOp(0b01001) // Rn -= Rm
	OP_LSL = CodeOp(0b01010) // Rn <<= Rm
	OP_LSR = CodeOp(0b01011) // Rn >>= Rm (arithmetic)
	OP_AND = CodeOp(0b01100) // Rn &= Rm
	OP_ORR = CodeOp(0b01101) // Rn |= Rm
	OP_XOR = CodeOp(0b01110) // Rn ^= Rm
	OP_NOT = CodeOp(0b01111) // Rn = ^Rn
	OP_BRA = CodeOp(0b10000) // Branch to location
	OP_BRZ = CodeOp(0b10010) // Branch to location if Rn is zero
	OP_BRP = CodeOp(0b10011) // Branch to location if Rn is zero or positive
)

var _code_op_names = map[CodeOp]string{
	OP_HLT: "HLT",
	OP_LDR: "LDR",
	OP_STR: "STR",
	OP_INP: "INP",
	OP_OUT: "OUT",
	OP_CPR: "CPR",
	OP_CPV: "CPV",
	OP_ADD: "ADD",
	OP_SUB: "SUB",
	OP_LSL: "LSL",
	OP_LSR: "LSR",
	OP_AND: "AND",
	OP_ORR: "ORR",
	OP_XOR: "XOR",
	OP_NOT: "NOT",
	OP_BRA: "BRA",
	OP_BRZ: "BRZ",
	OP_BRP: "BRP",
}

// Known returns true if the operation is assigned in the instruction set.
func (op CodeOp) Known() bool {
	_, ok := _code_op_names[op]
	return ok
}

// String returns the mnemonic of the operation.
func (op CodeOp) String() string {
	name, ok := _code_op_names[op]
	if !ok {
		return fmt.Sprintf("0b%05b", int(op)&0x1f)
	}
	return name
}

// Instruction word layout.
//
//	XXX XXXXX XXXX XXXX XXXXXXXXXXXXXXXX
//	 3    5     4    4         16
//	FLG  OP    Rn   Rm    location
const (
	CODE_FLAG_DST      = uint32(1 << 31) // flg0: Rn is a system register
	CODE_FLAG_SRC      = uint32(1 << 30) // flg1: Rm is a system register
	CODE_FLAG_INDIRECT = uint32(1 << 29) // flg2: LDR/STR address is in Rm

	CODE_OP_SHIFT       = 24
	CODE_OP_MASK        = uint32(0x1f)
	CODE_RN_SHIFT       = 20
	CODE_RM_SHIFT       = 16
	CODE_REG_MASK       = uint32(0xf)
	CODE_LOCATION_MASK  = uint32(0xffff)
	CODE_REGISTER_COUNT = 16
)

// CodeReg selects a register: bit 4 is the bank, bits 0-3 the index.
type CodeReg uint8

const (
	REG_R0 = CodeReg(iota)
	REG_R1
	REG_R2
	REG_R3
	REG_R4
	REG_R5
	REG_R6
	REG_R7
	REG_R8
	REG_R9
	REG_R10
	REG_R11
	REG_R12
	REG_R13
	REG_R14
	REG_R15
	REG_S0
	REG_S1
	REG_S2
	REG_S3
	REG_S4
	REG_S5
	REG_S6
	REG_S7
	REG_S8
	REG_S9
	REG_S10
	REG_S11
	REG_S12
	REG_S13
	REG_S14
	REG_S15
)

// REG_PC is the program counter.
const REG_PC = REG_S0

// MakeReg creates a register selector from a bank and index.
func MakeReg(bank Bank, index uint8) CodeReg {
	reg := CodeReg(index & 0xf)
	if bank == BANK_SYSTEM {
		reg |= 0x10
	}
	return reg
}

// Bank returns the register bank of the selector.
func (reg CodeReg) Bank() Bank {
	return BankFor((reg & 0x10) != 0)
}

// Index returns the register index within its bank.
func (reg CodeReg) Index() uint8 {
	return uint8(reg & 0xf)
}

// String returns the assembly name of the register, R0-R15 or S0-S15.
func (reg CodeReg) String() string {
	prefix := "R"
	if reg.Bank() == BANK_SYSTEM {
		prefix = "S"
	}
	return fmt.Sprintf("%v%d", prefix, reg.Index())
}

// Code is a single 32-bit instruction word.
type Code uint32

// Decoded is the structured form of an instruction word.
type Decoded struct {
	Flg0     bool   // Destination (Rn) bank is system.
	Flg1     bool   // Source (Rm) bank is system.
	Flg2     bool   // Indirect addressing for LDR/STR.
	Op       CodeOp // Operation.
	Rn       uint8  // Destination register index.
	Rm       uint8  // Source register index.
	Location uint16 // Immediate value or memory address.
}

// Decode splits the instruction word into its fields.
// Every word decodes; the operation may not be Known().
func (code Code) Decode() (dec Decoded) {
	word := uint32(code)
	dec.Flg0 = (word & CODE_FLAG_DST) != 0
	dec.Flg1 = (word & CODE_FLAG_SRC) != 0
	dec.Flg2 = (word & CODE_FLAG_INDIRECT) != 0
	dec.Op = CodeOp((word >> CODE_OP_SHIFT) & CODE_OP_MASK)
	dec.Rn = uint8((word >> CODE_RN_SHIFT) & CODE_REG_MASK)
	dec.Rm = uint8((word >> CODE_RM_SHIFT) & CODE_REG_MASK)
	dec.Location = uint16(word & CODE_LOCATION_MASK)
	return
}

// Encode is the inverse of Code.Decode.
func (dec Decoded) Encode() Code {
	var word uint32
	if dec.Flg0 {
		word |= CODE_FLAG_DST
	}
	if dec.Flg1 {
		word |= CODE_FLAG_SRC
	}
	if dec.Flg2 {
		word |= CODE_FLAG_INDIRECT
	}
	word |= (uint32(dec.Op) & CODE_OP_MASK) << CODE_OP_SHIFT
	word |= (uint32(dec.Rn) & CODE_REG_MASK) << CODE_RN_SHIFT
	word |= (uint32(dec.Rm) & CODE_REG_MASK) << CODE_RM_SHIFT
	word |= uint32(dec.Location)
	return Code(word)
}

// Dst returns the destination register selector.
func (dec Decoded) Dst() CodeReg {
	return MakeReg(BankFor(dec.Flg0), dec.Rn)
}

// Src returns the source register selector.
func (dec Decoded) Src() CodeReg {
	return MakeReg(BankFor(dec.Flg1), dec.Rm)
}

// MakeCode creates an instruction word from a destination, source and location.
func MakeCode(op CodeOp, dst, src CodeReg, indirect bool, location uint16) Code {
	return Decoded{
		Flg0:     dst.Bank() == BANK_SYSTEM,
		Flg1:     src.Bank() == BANK_SYSTEM,
		Flg2:     indirect,
		Op:       op,
		Rn:       dst.Index(),
		Rm:       src.Index(),
		Location: location,
	}.Encode()
}

// MakeCodeHlt creates a halt instruction.
func MakeCodeHlt() Code {
	return MakeCode(OP_HLT, REG_R0, REG_R0, false, 0)
}

// MakeCodeLdr creates a direct load of memory[location] into dst.
func MakeCodeLdr(dst CodeReg, location uint16) Code {
	return MakeCode(OP_LDR, dst, REG_R0, false, location)
}

// MakeCodeLdp creates an indirect load of memory[addr] into dst.
func MakeCodeLdp(dst, addr CodeReg) Code {
	return MakeCode(OP_LDR, dst, addr, true, 0)
}

// MakeCodeStr creates a direct store of src into memory[location].
func MakeCodeStr(src CodeReg, location uint16) Code {
	return MakeCode(OP_STR, src, REG_R0, false, location)
}

// MakeCodeStp creates an indirect store of src into memory[addr].
func MakeCodeStp(src, addr CodeReg) Code {
	return MakeCode(OP_STR, src, addr, true, 0)
}

// MakeCodeInp creates a console input into dst.
func MakeCodeInp(dst CodeReg) Code {
	return MakeCode(OP_INP, dst, REG_R0, false, 0)
}

// MakeCodeOut creates a console output of src.
func MakeCodeOut(src CodeReg) Code {
	return MakeCode(OP_OUT, src, REG_R0, false, 0)
}

// MakeCodeCpr creates a register to register copy.
func MakeCodeCpr(dst, src CodeReg) Code {
	return MakeCode(OP_CPR, dst, src, false, 0)
}

// MakeCodeCpv creates an immediate value copy into dst.
func MakeCodeCpv(dst CodeReg, value uint16) Code {
	return MakeCode(OP_CPV, dst, REG_R0, false, value)
}

// MakeCodeAlu creates a two register ALU operation (ADD through XOR).
func MakeCodeAlu(op CodeOp, dst, src CodeReg) Code {
	return MakeCode(op, dst, src, false, 0)
}

// MakeCodeNot creates a bitwise complement of dst.
func MakeCodeNot(dst CodeReg) Code {
	return MakeCode(OP_NOT, dst, REG_R0, false, 0)
}

// MakeCodeBra creates an unconditional branch.
func MakeCodeBra(location uint16) Code {
	return MakeCode(OP_BRA, REG_R0, REG_R0, false, location)
}

// MakeCodeBranch creates a conditional branch (BRZ or BRP) testing reg.
func MakeCodeBranch(op CodeOp, reg CodeReg, location uint16) Code {
	return MakeCode(op, reg, REG_R0, false, location)
}

// MakeCodeData creates a raw data word.
func MakeCodeData(value uint32) Code {
	return Code(value)
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	dec := code.Decode()

	switch dec.Op {
	case OP_HLT:
		out = dec.Op.String()
	case OP_LDR, OP_STR:
		if dec.Flg2 {
			mnemonic := "LDP"
			if dec.Op == OP_STR {
				mnemonic = "STP"
			}
			out = fmt.Sprintf("%v %v, %v", mnemonic, dec.Dst(), dec.Src())
		} else {
			out = fmt.Sprintf("%v %v, %d", dec.Op, dec.Dst(), dec.Location)
		}
	case OP_INP, OP_OUT, OP_NOT:
		out = fmt.Sprintf("%v %v", dec.Op, dec.Dst())
	case OP_CPV:
		out = fmt.Sprintf("%v %v, %d", dec.Op, dec.Dst(), dec.Location)
	case OP_CPR, OP_ADD, OP_SUB, OP_LSL, OP_LSR, OP_AND, OP_ORR, OP_XOR:
		out = fmt.Sprintf("%v %v, %v", dec.Op, dec.Dst(), dec.Src())
	case OP_BRA:
		out = fmt.Sprintf("%v %d", dec.Op, dec.Location)
	case OP_BRZ, OP_BRP:
		out = fmt.Sprintf("%v %v, %d", dec.Op, dec.Dst(), dec.Location)
	default:
		out = fmt.Sprintf("??? %v 0x%08x", dec.Op, uint32(code))
	}

	return
}

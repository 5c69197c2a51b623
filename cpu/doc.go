// Package cpu implements the LMC++ instruction codec and execution engine.
//
// The machine has two banks of sixteen signed 32-bit registers, general
// (R0-R15) and system (S0-S15), and 65536 words of memory. S0 is the
// program counter. Each 32-bit instruction carries a 5-bit opcode, three
// flag bits selecting the destination bank, source bank and indirect
// addressing, two register indices and a 16-bit location.
//
// Console input and output is delegated to a Console collaborator.
package cpu

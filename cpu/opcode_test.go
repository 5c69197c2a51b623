package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeDecode(t *testing.T) {
	assert := assert.New(t)

	// flg 101, op 01000 (ADD), Rn 3, Rm 4, location 0xbeef
	code := Code(0b101_01000_0011_0100_1011111011101111)

	dec := code.Decode()
	assert.True(dec.Flg0)
	assert.False(dec.Flg1)
	assert.True(dec.Flg2)
	assert.Equal(OP_ADD, dec.Op)
	assert.Equal(uint8(3), dec.Rn)
	assert.Equal(uint8(4), dec.Rm)
	assert.Equal(uint16(0xbeef), dec.Location)

	assert.Equal(REG_S3, dec.Dst())
	assert.Equal(REG_R4, dec.Src())

	assert.Equal(code, dec.Encode())
}

func TestCodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := []uint32{
		0x00000000,
		0xffffffff,
		0x80000000,
		0x40000000,
		0x20000000,
		0x1f000000,
		0x00f00000,
		0x000f0000,
		0x0000ffff,
		0x12345678,
		0xdeadbeef,
	}

	for _, word := range table {
		assert.Equal(Code(word), Code(word).Decode().Encode(), "0x%08x", word)
	}

	rnd := rand.New(rand.NewSource(1))
	for range 10000 {
		word := rnd.Uint32()
		assert.Equal(Code(word), Code(word).Decode().Encode(), "0x%08x", word)
	}
}

func TestCodeOp(t *testing.T) {
	assert := assert.New(t)

	known := 0
	for op := range CodeOp(32) {
		if op.Known() {
			known++
		}
	}
	assert.Equal(18, known)

	assert.False(CodeOp(0b00001).Known())
	assert.False(CodeOp(0b10001).Known())
	assert.False(CodeOp(0b11111).Known())

	assert.Equal("LSL", OP_LSL.String())
	assert.Equal("LSR", OP_LSR.String())
	assert.Equal("0b11111", CodeOp(0b11111).String())
}

func TestCodeReg(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("R0", REG_R0.String())
	assert.Equal("R15", REG_R15.String())
	assert.Equal("S0", REG_PC.String())
	assert.Equal("S9", REG_S9.String())

	assert.Equal(BANK_GENERAL, REG_R7.Bank())
	assert.Equal(BANK_SYSTEM, REG_S7.Bank())
	assert.Equal(uint8(7), REG_S7.Index())

	assert.Equal(REG_S12, MakeReg(BANK_SYSTEM, 12))
	assert.Equal(REG_R12, MakeReg(BANK_GENERAL, 12))
}

func TestCodeMake(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		word uint32
		text string
	}){
		{MakeCodeHlt(), 0x00000000, "HLT"},
		{MakeCodeLdr(REG_R1, 100), 0x02100064, "LDR R1, 100"},
		{MakeCodeLdr(REG_S1, 100), 0x82100064, "LDR S1, 100"},
		{MakeCodeLdp(REG_R1, REG_S2), 0x62120000, "LDP R1, S2"},
		{MakeCodeStr(REG_R2, 7), 0x03200007, "STR R2, 7"},
		{MakeCodeStp(REG_S2, REG_R3), 0xa3230000, "STP S2, R3"},
		{MakeCodeInp(REG_R4), 0x04400000, "INP R4"},
		{MakeCodeOut(REG_S4), 0x85400000, "OUT S4"},
		{MakeCodeCpr(REG_R5, REG_S6), 0x46560000, "CPR R5, S6"},
		{MakeCodeCpv(REG_R0, 42), 0x0700002a, "CPV R0, 42"},
		{MakeCodeCpv(REG_PC, 12), 0x8700000c, "CPV S0, 12"},
		{MakeCodeAlu(OP_ADD, REG_R0, REG_R1), 0x08010000, "ADD R0, R1"},
		{MakeCodeAlu(OP_SUB, REG_S15, REG_S14), 0xc9fe0000, "SUB S15, S14"},
		{MakeCodeAlu(OP_XOR, REG_R9, REG_R9), 0x0e990000, "XOR R9, R9"},
		{MakeCodeNot(REG_R3), 0x0f300000, "NOT R3"},
		{MakeCodeBra(0x1234), 0x10001234, "BRA 4660"},
		{MakeCodeBranch(OP_BRZ, REG_R3, 12), 0x1230000c, "BRZ R3, 12"},
		{MakeCodeBranch(OP_BRP, REG_S3, 12), 0x9330000c, "BRP S3, 12"},
		{MakeCodeData(0x1f000000), 0x1f000000, "??? 0b11111 0x1f000000"},
	}

	for _, entry := range table {
		assert.Equal(entry.word, uint32(entry.code), entry.text)
		assert.Equal(entry.text, entry.code.String())
	}
}

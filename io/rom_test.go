package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadRom(t *testing.T) {
	assert := assert.New(t)

	raw := []byte{
		0x05, 0x00, 0x00, 0x07, // CPV R0, 5
		0x00, 0x00, 0x00, 0x05, // OUT R0
		0x00, 0x00, 0x00, 0x00, // HLT
	}

	rom, err := ReadRom(bytes.NewReader(raw))
	assert.NoError(err)
	assert.Equal([]uint32{0x07000005, 0x05000000, 0x00000000}, rom.Data)
}

func TestReadRom_Partial(t *testing.T) {
	assert := assert.New(t)

	rom, err := ReadRom(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0x34, 0x12}))
	assert.NoError(err)
	assert.Equal([]uint32{0x00000001, 0x00001234}, rom.Data)
}

func TestReadRom_Empty(t *testing.T) {
	assert := assert.New(t)

	rom, err := ReadRom(bytes.NewReader(nil))
	assert.NoError(err)
	assert.Equal(0, len(rom.Data))
}

func TestReadRom_Size(t *testing.T) {
	assert := assert.New(t)

	rom, err := ReadRom(bytes.NewReader(make([]byte, ROM_WORDS_MAX*ROM_WORD_SIZE)))
	assert.NoError(err)
	assert.Equal(ROM_WORDS_MAX, len(rom.Data))

	rom, err = ReadRom(bytes.NewReader(make([]byte, ROM_WORDS_MAX*ROM_WORD_SIZE+1)))
	assert.ErrorIs(err, ErrRomSize)
	assert.Nil(rom)
}

type failReader struct{}

func (failReader) Read(p []byte) (int, error) {
	return 0, errors.New("broken")
}

func TestReadRom_Error(t *testing.T) {
	assert := assert.New(t)

	rom, err := ReadRom(failReader{})
	assert.EqualError(err, "broken")
	assert.Nil(rom)
}

func TestRom_WriteTo(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint32{0x07000005, 0xdeadbeef}}

	buf := &bytes.Buffer{}
	n, err := rom.WriteTo(buf)
	assert.NoError(err)
	assert.Equal(int64(8), n)
	assert.Equal([]byte{0x05, 0x00, 0x00, 0x07, 0xef, 0xbe, 0xad, 0xde}, buf.Bytes())

	back, err := ReadRom(buf)
	assert.NoError(err)
	assert.Equal(rom.Data, back.Data)

	big := &Rom{Data: make([]uint32, ROM_WORDS_MAX+1)}
	_, err = big.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(err, ErrRomSize)
}

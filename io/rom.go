package io

import (
	"encoding/binary"
	"io"
)

const (
	ROM_WORDS_MAX = 65536 // Largest image, in 32-bit words.
	ROM_WORD_SIZE = 4     // Bytes per word.
)

// Rom is a program image: consecutive little-endian 32-bit words, loaded
// at address 0.
type Rom struct {
	Data []uint32
}

// ReadRom reads an entire image. A trailing partial word is zero padded.
func ReadRom(r io.Reader) (rom *Rom, err error) {
	raw, err := io.ReadAll(io.LimitReader(r, ROM_WORDS_MAX*ROM_WORD_SIZE+1))
	if err != nil {
		return
	}

	if len(raw) > ROM_WORDS_MAX*ROM_WORD_SIZE {
		err = ErrRomSize
		return
	}

	if tail := len(raw) % ROM_WORD_SIZE; tail != 0 {
		raw = append(raw, make([]byte, ROM_WORD_SIZE-tail)...)
	}

	rom = &Rom{
		Data: make([]uint32, len(raw)/ROM_WORD_SIZE),
	}
	for n := range rom.Data {
		rom.Data[n] = binary.LittleEndian.Uint32(raw[n*ROM_WORD_SIZE:])
	}

	return
}

// WriteTo writes the image in the format read by ReadRom.
func (rc *Rom) WriteTo(w io.Writer) (n int64, err error) {
	if len(rc.Data) > ROM_WORDS_MAX {
		err = ErrRomSize
		return
	}

	raw := make([]byte, 0, len(rc.Data)*ROM_WORD_SIZE)
	for _, word := range rc.Data {
		raw = binary.LittleEndian.AppendUint32(raw, word)
	}

	wrote, err := w.Write(raw)
	n = int64(wrote)
	return
}

package io

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestFinder_Name(t *testing.T) {
	assert := assert.New(t)

	fd := &Finder{}

	table := [](struct {
		name string
		want string
	}){
		{"add", "add.bin"},
		{"add.bin", "add.bin"},
		{"add.BIN", "add.BIN.bin"},
		{".bin", ".bin.bin"},
		{"a.bin", "a.bin"},
		{"dir/add", "dir/add.bin"},
	}

	for _, entry := range table {
		assert.Equal(entry.want, fd.Name(entry.name), entry.name)
	}

	fd.Extension = ".img"
	assert.Equal("add.img", fd.Name("add"))
}

func TestFinder_Find(t *testing.T) {
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"local.bin":         {Data: []byte{0x01, 0x00, 0x00, 0x00}},
		"examples/ex.bin":   {Data: []byte{0x02, 0x00, 0x00, 0x00}},
		"examples/both.bin": {Data: []byte{0x03, 0x00, 0x00, 0x00}},
		"both.bin":          {Data: []byte{0x04, 0x00, 0x00, 0x00}},
	}

	var attempts []string
	fd := &Finder{
		FS: fsys,
		Attempted: func(name string, err error) {
			attempts = append(attempts, name)
		},
	}

	rom, found, err := fd.Find("local")
	assert.NoError(err)
	assert.Equal("local.bin", found)
	assert.Equal([]uint32{1}, rom.Data)
	assert.Nil(attempts)

	rom, found, err = fd.Find("ex")
	assert.NoError(err)
	assert.Equal("examples/ex.bin", found)
	assert.Equal([]uint32{2}, rom.Data)
	assert.Equal([]string{"ex.bin"}, attempts)

	rom, found, err = fd.Find("both.bin")
	assert.NoError(err)
	assert.Equal("both.bin", found)
	assert.Equal([]uint32{4}, rom.Data)

	attempts = nil
	rom, found, err = fd.Find("missing")
	assert.ErrorIs(err, ErrNotFound)
	assert.Nil(rom)
	assert.Equal("", found)
	assert.Equal([]string{"missing.bin", "examples/missing.bin"}, attempts)
}

func TestFinder_Paths(t *testing.T) {
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"a/prog.bin": {Data: []byte{0x0a}},
		"b/prog.bin": {Data: []byte{0x0b}},
		"big.bin":    {Data: make([]byte, ROM_WORDS_MAX*ROM_WORD_SIZE+4)},
	}

	fd := &Finder{FS: fsys, Paths: []string{"b", "a"}}
	rom, found, err := fd.Find("prog")
	assert.NoError(err)
	assert.Equal("b/prog.bin", found)
	assert.Equal([]uint32{0x0b}, rom.Data)

	fd.Paths = []string{".", "b"}
	_, _, err = fd.Find("big")
	assert.ErrorIs(err, ErrRomSize)
}

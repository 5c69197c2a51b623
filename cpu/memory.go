package cpu

const (
	MEMORY_SIZE = 65536 // Words of memory, addressed by 16 bits.
)

// Memory is the flat word-addressed store of the machine.
type Memory [MEMORY_SIZE]uint32

// Read returns the word at addr.
func (m *Memory) Read(addr uint16) uint32 {
	return m[addr]
}

// Write sets the word at addr.
func (m *Memory) Write(addr uint16, value uint32) {
	m[addr] = value
}

// Load copies words to address 0 upward, zero filling the remainder.
func (m *Memory) Load(words []uint32) (err error) {
	if len(words) > MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	n := copy(m[:], words)
	clear(m[n:])

	return
}

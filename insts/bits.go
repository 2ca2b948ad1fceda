package insts

import "fmt"

// WordBits is the width of an instruction word.
const WordBits = 32

// Bits returns the length-bit field of word starting at bit offset,
// right-justified. It panics if the field does not fit in a word.
func Bits(word uint32, offset, length uint) uint32 {
	if offset+length > WordBits {
		panic(fmt.Sprintf("insts: bit field [%d:%d) exceeds %d-bit word",
			offset, offset+length, WordBits))
	}

	mask := ^uint32(0) >> (WordBits - length)

	return (word >> offset) & mask
}

// Flag reports whether bit offset of word is set.
func Flag(word uint32, offset uint) bool {
	return Bits(word, offset, 1) == 1
}

// RegisterAt returns the register named by the 4-bit field at offset.
func RegisterAt(word uint32, offset uint) Register {
	return NewRegister(int(Bits(word, offset, 4)))
}

package insts

import "fmt"

// Cond represents an ARM condition code.
type Cond uint8

// ARM condition codes, in encoding order.
const (
	CondEQ Cond = 0b0000 // Equal (Z == 1)
	CondNE Cond = 0b0001 // Not Equal (Z == 0)
	CondCS Cond = 0b0010 // Carry Set / Unsigned higher or same (C == 1)
	CondCC Cond = 0b0011 // Carry Clear / Unsigned lower (C == 0)
	CondMI Cond = 0b0100 // Minus / Negative (N == 1)
	CondPL Cond = 0b0101 // Plus / Positive or zero (N == 0)
	CondVS Cond = 0b0110 // Overflow (V == 1)
	CondVC Cond = 0b0111 // No overflow (V == 0)
	CondHI Cond = 0b1000 // Unsigned higher (C == 1 && Z == 0)
	CondLS Cond = 0b1001 // Unsigned lower or same (C == 0 || Z == 1)
	CondGE Cond = 0b1010 // Signed greater than or equal (N == V)
	CondLT Cond = 0b1011 // Signed less than (N != V)
	CondGT Cond = 0b1100 // Signed greater than (Z == 0 && N == V)
	CondLE Cond = 0b1101 // Signed less than or equal (Z == 1 || N != V)
	CondAL Cond = 0b1110 // Always (unconditional)
	CondNV Cond = 0b1111 // Never
)

var condMnemonics = [16]string{
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "al", "nv",
}

// CondFromBits returns the condition code for a 4-bit field.
// It panics if bits has anything set above bit 3.
func CondFromBits(bits uint32) Cond {
	if bits > 0b1111 {
		panic(fmt.Sprintf("insts: condition field 0x%X wider than 4 bits", bits))
	}

	return Cond(bits)
}

// condAt decodes the condition field, bits [31:28].
func condAt(word uint32) Cond {
	return CondFromBits(Bits(word, 28, 4))
}

// Mnemonic returns the two letter condition suffix, e.g. "eq".
func (c Cond) Mnemonic() string {
	return condMnemonics[c&0xF]
}

func (c Cond) String() string {
	return c.Mnemonic()
}

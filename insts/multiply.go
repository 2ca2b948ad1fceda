package insts

// Multiply is a decoded multiply or multiply-long instruction.
//
// For the long forms Rd holds the high word and Rn the low word of the
// result. Register reuse is allowed and not checked.
type Multiply struct {
	Cond       Cond // bits [31:28]
	Long       bool // bit 23: 64-bit result
	Signed     bool // bit 22: signed (long forms)
	Accumulate bool // bit 21: MLA / xMLAL
	SetFlags   bool // bit 20

	Rd Register // Destination (RdHi), bits [19:16]
	Rn Register // Operand 1 (accumulator or RdLo), bits [15:12]
	Rs Register // Operand 2, bits [11:8]
	Rm Register // Operand 3, bits [3:0]
}

// DecodeMultiply decodes a multiply instruction.
// Format: cond | 0000 | L | U | A | S | Rd | Rn | Rs | 1001 | Rm
func DecodeMultiply(word uint32) Multiply {
	return Multiply{
		Cond:       condAt(word),
		Long:       Flag(word, 23),
		Signed:     Flag(word, 22),
		Accumulate: Flag(word, 21),
		SetFlags:   Flag(word, 20),
		Rd:         RegisterAt(word, 16),
		Rn:         RegisterAt(word, 12),
		Rs:         RegisterAt(word, 8),
		Rm:         RegisterAt(word, 0),
	}
}

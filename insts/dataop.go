package insts

// DataOp represents a data processing (ALU) opcode.
type DataOp uint8

// Data processing opcodes, in encoding order (bits [24:21]).
const (
	DataOpAND DataOp = 0b0000 // And
	DataOpEOR DataOp = 0b0001 // Exclusive or
	DataOpSUB DataOp = 0b0010 // Subtract
	DataOpRSB DataOp = 0b0011 // Reverse subtract
	DataOpADD DataOp = 0b0100 // Add
	DataOpADC DataOp = 0b0101 // Add with carry
	DataOpSBC DataOp = 0b0110 // Subtract with carry
	DataOpRSC DataOp = 0b0111 // Reverse subtract with carry
	DataOpTST DataOp = 0b1000 // Test
	DataOpTEQ DataOp = 0b1001 // Test equivalence
	DataOpCMP DataOp = 0b1010 // Compare
	DataOpCMN DataOp = 0b1011 // Compare negated
	DataOpORR DataOp = 0b1100 // Or
	DataOpMOV DataOp = 0b1101 // Move
	DataOpBIC DataOp = 0b1110 // Bit clear
	DataOpMVN DataOp = 0b1111 // Move not
)

var dataOpMnemonics = [16]string{
	"and", "eor", "sub", "rsb", "add", "adc", "sbc", "rsc",
	"tst", "teq", "cmp", "cmn", "orr", "mov", "bic", "mvn",
}

// DataOpFromBits returns the opcode for a 4-bit field.
// It panics if bits has anything set above bit 3.
func DataOpFromBits(bits uint32) DataOp {
	if bits > 0b1111 {
		panic("insts: data opcode field wider than 4 bits")
	}

	return DataOp(bits)
}

// Mnemonic returns the three letter opcode name, e.g. "add".
func (op DataOp) Mnemonic() string {
	return dataOpMnemonics[op&0xF]
}

func (op DataOp) String() string {
	return op.Mnemonic()
}

// IsComparison reports whether op only updates flags (TST, TEQ, CMP, CMN).
func (op DataOp) IsComparison() bool {
	return op >= DataOpTST && op <= DataOpCMN
}

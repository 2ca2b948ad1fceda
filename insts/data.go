package insts

// DataInstruction is a decoded data processing instruction.
type DataInstruction struct {
	Cond     Cond           // bits [31:28]
	Opcode   DataOp         // bits [24:21]
	SetFlags bool           // bit 20 (S suffix)
	Rn       Register       // First operand, bits [19:16]
	Rd       Register       // Destination, bits [15:12]
	Operand2 ShifterOperand // bits [11:0], form selected by bit 25
}

// DecodeData decodes a data processing instruction.
// Format: cond | 00 | I | opcode | S | Rn | Rd | operand2
//
// An invalid register-shift operand is returned unchanged as the error.
func DecodeData(word uint32) (DataInstruction, error) {
	inst := DataInstruction{
		Cond:     condAt(word),
		Opcode:   DataOpFromBits(Bits(word, 21, 4)),
		SetFlags: Flag(word, 20),
		Rn:       RegisterAt(word, 16),
		Rd:       RegisterAt(word, 12),
	}

	field := uint16(Bits(word, 0, 16))
	if Flag(word, 25) {
		inst.Operand2 = FromImmediate(field)
		return inst, nil
	}

	op2, err := FromRegisterOperand(field)
	if err != nil {
		return DataInstruction{}, err
	}
	inst.Operand2 = op2

	return inst, nil
}

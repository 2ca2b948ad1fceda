package insts

// ShiftType represents a shift applied to a register operand.
type ShiftType uint8

// Shift types, in encoding order (bits [6:5]).
const (
	ShiftLSL ShiftType = 0b00 // Logical shift left
	ShiftLSR ShiftType = 0b01 // Logical shift right
	ShiftASR ShiftType = 0b10 // Arithmetic shift right
	ShiftROR ShiftType = 0b11 // Rotate right
)

var shiftMnemonics = [4]string{"lsl", "lsr", "asr", "ror"}

// Mnemonic returns the assembler name of the shift, e.g. "lsl".
func (s ShiftType) Mnemonic() string {
	return shiftMnemonics[s&0b11]
}

func (s ShiftType) String() string {
	return s.Mnemonic()
}

// ShiftAmount is the amount a register operand is shifted by: either a
// literal or the bottom byte of a register read at execution time.
type ShiftAmount struct {
	FromRegister bool
	Register     Register // valid when FromRegister
	Value        uint8    // valid when !FromRegister
}

// ByRegister returns a shift amount held in register r.
func ByRegister(r Register) ShiftAmount {
	return ShiftAmount{FromRegister: true, Register: r}
}

// ByValue returns a literal shift amount.
func ByValue(n uint8) ShiftAmount {
	return ShiftAmount{Value: n}
}

// OperandKind tells which form a ShifterOperand holds.
type OperandKind uint8

// Shifter operand forms.
const (
	OperandImmediate OperandKind = iota // 8-bit value rotated right by 2*Rotate
	OperandShift                        // register shifted by an amount
)

// ShifterOperand is the second operand of a data processing instruction.
type ShifterOperand struct {
	Kind OperandKind

	// Immediate form
	Value  uint8 // bits [7:0]
	Rotate uint8 // bits [11:8], rotation is 2*Rotate

	// Shift form
	Shift  ShiftType   // bits [6:5]
	Source Register    // bits [3:0]
	Amount ShiftAmount // bits [10:7] or Rs in bits [11:8]
}

// ImmediateOperand builds a rotated immediate operand.
func ImmediateOperand(value, rotate uint8) ShifterOperand {
	return ShifterOperand{Kind: OperandImmediate, Value: value, Rotate: rotate}
}

// ShiftedOperand builds a shifted register operand.
func ShiftedOperand(shift ShiftType, source Register, amount ShiftAmount) ShifterOperand {
	return ShifterOperand{
		Kind:   OperandShift,
		Shift:  shift,
		Source: source,
		Amount: amount,
	}
}

// FromImmediate decodes an immediate shifter operand from the low 16 bits
// of an instruction. The rotation is not applied.
// Format: rotate(4) | imm8
func FromImmediate(field uint16) ShifterOperand {
	bits := uint32(field)

	return ImmediateOperand(
		uint8(Bits(bits, 0, 8)),
		uint8(Bits(bits, 8, 4)),
	)
}

// FromRegisterOperand decodes a shifted register operand from the low 16
// bits of an instruction.
// Literal format:  x | amount(4) | shift(2) | 0 | Rm
// Register format: Rs | 0 | shift(2) | 1 | Rm
//
// A register shift with bit 7 set is reserved and yields an
// InvalidShifterOperandError.
func FromRegisterOperand(field uint16) (ShifterOperand, error) {
	bits := uint32(field)

	var amount ShiftAmount
	if Flag(bits, 4) {
		if Flag(bits, 7) {
			return ShifterOperand{}, InvalidShifterOperandError(field)
		}
		amount = ByRegister(RegisterAt(bits, 8))
	} else {
		amount = ByValue(uint8(Bits(bits, 7, 4)))
	}

	return ShiftedOperand(
		ShiftType(Bits(bits, 5, 2)),
		RegisterAt(bits, 0),
		amount,
	), nil
}

// IsRotateRightExtended reports whether the operand is a rotate right by a
// literal zero, which the hardware executes as RRX.
func (o ShifterOperand) IsRotateRightExtended() bool {
	return o.Kind == OperandShift &&
		o.Shift == ShiftROR &&
		o.Amount == ByValue(0)
}

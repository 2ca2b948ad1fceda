package insts

import (
	"errors"
	"fmt"
)

// ErrInvalidShifterOperand matches any InvalidShifterOperandError.
var ErrInvalidShifterOperand = errors.New("invalid shifter operand")

// InvalidShifterOperandError reports a register-specified shift with the
// reserved bit 7 set. The value is the original 16-bit operand field.
type InvalidShifterOperandError uint16

func (e InvalidShifterOperandError) Error() string {
	return fmt.Sprintf("invalid shifter operand 0x%03X: register shift with bit 7 set",
		uint16(e))
}

// Is lets errors.Is match the sentinel.
func (e InvalidShifterOperandError) Is(target error) bool {
	return target == ErrInvalidShifterOperand
}

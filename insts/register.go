package insts

import "fmt"

// RegisterCount is the number of general purpose registers.
const RegisterCount = 16

// Register identifies one of the 16 general purpose registers.
type Register uint8

// NewRegister returns the register with the given index.
// It panics if index is not in [0, RegisterCount).
func NewRegister(index int) Register {
	if index < 0 || index >= RegisterCount {
		panic(fmt.Sprintf("insts: register index %d out of range", index))
	}

	return Register(index)
}

// Index returns the register number.
func (r Register) Index() int {
	return int(r)
}

func (r Register) String() string {
	return fmt.Sprintf("r%d", uint8(r))
}

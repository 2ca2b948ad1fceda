// Package insts provides decoders for 32-bit ARM instruction words.
//
// This package turns raw machine words into structured, comparable values.
// It supports:
//   - Condition codes (bits [31:28] of every instruction)
//   - Shifter operands: rotated immediates and shifted registers
//   - Data processing: AND, EOR, SUB, ... MVN
//   - Multiply and multiply-long: MUL, MLA, UMULL, SMLAL, ...
//   - Single data swap: SWP, SWPB
//   - Branches: B, BL, BX
//
// Picking the decoder for a word is left to the caller. Every decoder is a
// pure function and safe for concurrent use.
//
// Usage:
//
//	inst, err := insts.DecodeData(0xE0810002) // ADD R0, R1, R2
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Op: %v, Rd: %v, Rn: %v\n", inst.Opcode, inst.Rd, inst.Rn)
package insts

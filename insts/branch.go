package insts

// BranchKind tells which form a Branch holds.
type BranchKind uint8

// Branch forms.
const (
	BranchImmediate BranchKind = iota // B, BL
	BranchExchange                    // BX
)

// Branch is a decoded branch instruction.
type Branch struct {
	Kind BranchKind
	Cond Cond // bits [31:28]

	// BranchExchange
	Target Register // bits [3:0]

	// BranchImmediate
	Offset int32 // Signed word offset, bits [23:0] sign-extended
	Link   bool  // bit 24 (BL)
}

// DecodeBranchExchange decodes BX.
// Format: cond | 0001 0010 1111 1111 1111 0001 | Rn
func DecodeBranchExchange(word uint32) Branch {
	return Branch{
		Kind:   BranchExchange,
		Cond:   condAt(word),
		Target: RegisterAt(word, 0),
	}
}

// DecodeBranch decodes B and BL.
// Format: cond | 101 | L | offset(24)
//
// The offset is in words and is not scaled or adjusted for the pipeline.
func DecodeBranch(word uint32) Branch {
	raw := Bits(word, 0, 24)

	// Move the 24-bit sign into bit 31, then shift back arithmetically.
	offset := int32(raw<<8) >> 8

	return Branch{
		Kind:   BranchImmediate,
		Cond:   condAt(word),
		Offset: offset,
		Link:   Flag(word, 24),
	}
}

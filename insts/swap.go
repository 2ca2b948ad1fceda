package insts

// SwapSize is the width of a swapped memory quantity.
type SwapSize uint8

// Swap sizes.
const (
	SwapWord SwapSize = iota
	SwapByte
)

func (s SwapSize) String() string {
	if s == SwapByte {
		return "byte"
	}
	return "word"
}

// Swap is a decoded single data swap (SWP, SWPB).
type Swap struct {
	Cond Cond     // bits [31:28]
	Size SwapSize // bit 22
	Rn   Register // Base, bits [19:16]
	Rd   Register // Destination, bits [15:12]
	Rm   Register // Source, bits [3:0]
}

// DecodeSwap decodes a single data swap instruction.
// Format: cond | 00010 | B | 00 | Rn | Rd | 0000 | 1001 | Rm
func DecodeSwap(word uint32) Swap {
	size := SwapWord
	if Flag(word, 22) {
		size = SwapByte
	}

	return Swap{
		Cond: condAt(word),
		Size: size,
		Rn:   RegisterAt(word, 16),
		Rd:   RegisterAt(word, 12),
		Rm:   RegisterAt(word, 0),
	}
}

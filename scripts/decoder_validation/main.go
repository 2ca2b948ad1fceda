// Validate decoder allocation behavior - every decode should be heap-free
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/sarchlab/armdec/insts"
)

var (
	iterations = flag.Int("iterations", 100000, "Number of passes over the sample set")
	dump       = flag.Bool("dump", false, "Print every decoded sample")
)

// sample pairs a word with the decoder it belongs to.
type sample struct {
	name   string
	word   uint32
	decode func(uint32) (any, error)
}

func decodeData(word uint32) (any, error) {
	return insts.DecodeData(word)
}

func decodeMultiply(word uint32) (any, error) {
	return insts.DecodeMultiply(word), nil
}

func decodeSwap(word uint32) (any, error) {
	return insts.DecodeSwap(word), nil
}

func decodeBranchExchange(word uint32) (any, error) {
	return insts.DecodeBranchExchange(word), nil
}

func decodeBranch(word uint32) (any, error) {
	return insts.DecodeBranch(word), nil
}

var samples = []sample{
	{"ADD R0, R1, R2", 0xE0810002, decodeData},
	{"ADD R0, R1, R2, LSL R3", 0xE0810312, decodeData},
	{"MOVS R3, #0xC000003F", 0xE3B031FF, decodeData},
	{"CMPNE R4, #1", 0x13540001, decodeData},
	{"MUL R1, R2, R3", 0xE0010392, decodeMultiply},
	{"SWP R0, R1, [R2]", 0xE1020091, decodeSwap},
	{"BX LR", 0xE12FFF1E, decodeBranchExchange},
	{"B .", 0xEAFFFFFE, decodeBranch},
	{"BL +0x100", 0xEB000040, decodeBranch},
}

var (
	sinkData     insts.DataInstruction
	sinkMultiply insts.Multiply
	sinkSwap     insts.Swap
	sinkBranch   insts.Branch
)

// decodePass runs the sample set through the typed decoders directly, so
// the measurement is not skewed by boxing into interfaces.
func decodePass() {
	sinkData, _ = insts.DecodeData(0xE0810002)
	sinkData, _ = insts.DecodeData(0xE0810312)
	sinkData, _ = insts.DecodeData(0xE3B031FF)
	sinkData, _ = insts.DecodeData(0x13540001)
	sinkMultiply = insts.DecodeMultiply(0xE0010392)
	sinkSwap = insts.DecodeSwap(0xE1020091)
	sinkBranch = insts.DecodeBranchExchange(0xE12FFF1E)
	sinkBranch = insts.DecodeBranch(0xEAFFFFFE)
	sinkBranch = insts.DecodeBranch(0xEB000040)
}

func main() {
	flag.Parse()

	if *dump {
		for _, s := range samples {
			inst, err := s.decode(s.word)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s (0x%08X): %v\n", s.name, s.word, err)
				os.Exit(1)
			}
			fmt.Printf("%s (0x%08X):\n%s", s.name, s.word, spew.Sdump(inst))
		}
		fmt.Println()
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		decodePass()
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	for i := 0; i < *iterations; i++ {
		decodePass()
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := *iterations * len(samples)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Validation Results:\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))

	if allocations == 0 {
		fmt.Printf("\n✅ SUCCESS: Zero allocations detected.\n")
	} else {
		fmt.Printf("\n⚠️  WARNING: Decoders allocated on the heap\n")
	}
}

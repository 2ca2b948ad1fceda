package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armdec/insts"
)

var _ = Describe("Shifter Operand", func() {
	r5 := insts.NewRegister(5)
	r11 := insts.NewRegister(11)

	Describe("FromImmediate", func() {
		It("should split value and rotate", func() {
			op := insts.FromImmediate(0b11111010_11001100)

			Expect(op).To(Equal(insts.ImmediateOperand(0b11001100, 0b1010)))
			Expect(op.Kind).To(Equal(insts.OperandImmediate))
		})

		It("should ignore bits above the rotate field", func() {
			Expect(insts.FromImmediate(0xF3FF)).To(Equal(insts.FromImmediate(0x03FF)))
		})
	})

	Describe("FromRegisterOperand", func() {
		// Field layout: amount/Rs | shift | kind | Rm, with Rm=5 throughout.
		DescribeTable("valid encodings",
			func(field uint16, expected insts.ShifterOperand) {
				op, err := insts.FromRegisterOperand(field)

				Expect(err).NotTo(HaveOccurred())
				Expect(op).To(Equal(expected))
			},
			Entry("LSL by literal", uint16(0b11001_000_0101),
				insts.ShiftedOperand(insts.ShiftLSL, r5, insts.ByValue(9))),
			Entry("LSL by register", uint16(0b10110_001_0101),
				insts.ShiftedOperand(insts.ShiftLSL, r5, insts.ByRegister(r11))),
			Entry("LSR by literal", uint16(0b11001_010_0101),
				insts.ShiftedOperand(insts.ShiftLSR, r5, insts.ByValue(9))),
			Entry("LSR by register", uint16(0b10110_011_0101),
				insts.ShiftedOperand(insts.ShiftLSR, r5, insts.ByRegister(r11))),
			Entry("ASR by literal", uint16(0b11001_100_0101),
				insts.ShiftedOperand(insts.ShiftASR, r5, insts.ByValue(9))),
			Entry("ASR by register", uint16(0b10110_101_0101),
				insts.ShiftedOperand(insts.ShiftASR, r5, insts.ByRegister(r11))),
			Entry("ROR by literal", uint16(0b11001_110_0101),
				insts.ShiftedOperand(insts.ShiftROR, r5, insts.ByValue(9))),
			Entry("ROR by register", uint16(0b10110_111_0101),
				insts.ShiftedOperand(insts.ShiftROR, r5, insts.ByRegister(r11))),
		)

		It("should reject a register shift with bit 7 set", func() {
			op, err := insts.FromRegisterOperand(0b10111_001_0101)

			Expect(err).To(Equal(insts.InvalidShifterOperandError(0b10111_001_0101)))
			Expect(err).To(MatchError(insts.ErrInvalidShifterOperand))
			Expect(op).To(BeZero())
		})

		It("should accept bit 7 on a literal shift", func() {
			// bit 4 clear, bit 7 set: literal amount 1
			op, err := insts.FromRegisterOperand(0b00001_000_0101)

			Expect(err).NotTo(HaveOccurred())
			Expect(op.Amount).To(Equal(insts.ByValue(1)))
		})
	})

	Describe("IsRotateRightExtended", func() {
		It("should report ROR by literal zero", func() {
			op, err := insts.FromRegisterOperand(0b00000_110_0101)

			Expect(err).NotTo(HaveOccurred())
			Expect(op).To(Equal(insts.ShiftedOperand(insts.ShiftROR, r5, insts.ByValue(0))))
			Expect(op.IsRotateRightExtended()).To(BeTrue())
		})

		It("should not report other forms", func() {
			Expect(insts.ShiftedOperand(insts.ShiftROR, r5, insts.ByValue(4)).IsRotateRightExtended()).To(BeFalse())
			Expect(insts.ShiftedOperand(insts.ShiftROR, r5, insts.ByRegister(insts.NewRegister(0))).IsRotateRightExtended()).To(BeFalse())
			Expect(insts.ShiftedOperand(insts.ShiftLSL, r5, insts.ByValue(0)).IsRotateRightExtended()).To(BeFalse())
			Expect(insts.ImmediateOperand(0, 0).IsRotateRightExtended()).To(BeFalse())
		})
	})

	It("should name shift types", func() {
		Expect(insts.ShiftLSL.String()).To(Equal("lsl"))
		Expect(insts.ShiftLSR.String()).To(Equal("lsr"))
		Expect(insts.ShiftASR.String()).To(Equal("asr"))
		Expect(insts.ShiftROR.String()).To(Equal("ror"))
	})
})

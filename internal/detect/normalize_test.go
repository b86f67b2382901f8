package detect

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Normalize", func() {
	var (
		tokens        []RawToken
		normalization *Normalization
	)

	JustBeforeEach(func() {
		normalization = Normalize(tokens)
	})

	When("tokens parse directly", func() {
		BeforeEach(func() {
			tokens = []RawToken{
				{Text: "1,200.50", Start: 0, End: 8},
				{Text: "1000", Start: 10, End: 14},
			}
		})

		It("should strip comma separators", func() {
			Expect(normalization.Amounts[0].Value).To(Equal(1200.5))
		})

		It("should keep integral values integral", func() {
			Expect(normalization.Amounts[1].Value).To(Equal(1000.0))
		})

		It("should preserve the original spans", func() {
			Expect(normalization.Amounts[0].Start).To(Equal(0))
			Expect(normalization.Amounts[0].End).To(Equal(8))
		})

		It("should use the fixed success confidence", func() {
			Expect(normalization.Confidence).To(Equal(0.82))
		})
	})

	When("tokens need OCR digit substitution", func() {
		BeforeEach(func() {
			tokens = []RawToken{
				{Text: "l200", Start: 0, End: 4},
				{Text: "1O0", Start: 5, End: 8},
				{Text: "SS", Start: 9, End: 11},
				{Text: "lOI", Start: 12, End: 15},
			}
		})

		It("should correct confusable letters to digits", func() {
			Expect(normalization.Amounts[0].Value).To(Equal(1200.0))
			Expect(normalization.Amounts[1].Value).To(Equal(100.0))
			Expect(normalization.Amounts[2].Value).To(Equal(55.0))
			Expect(normalization.Amounts[3].Value).To(Equal(101.0))
		})

		It("should keep the uncorrected token text", func() {
			Expect(normalization.Amounts[0].Text).To(Equal("l200"))
		})
	})

	When("a token contains a percent sign", func() {
		BeforeEach(func() {
			tokens = []RawToken{
				{Text: "10%", Start: 0, End: 3},
				{Text: "500", Start: 5, End: 8},
			}
		})

		It("should drop the percentage", func() {
			Expect(normalization.Amounts).To(HaveLen(1))
			Expect(normalization.Amounts[0].Value).To(Equal(500.0))
		})
	})

	When("a token parses to zero", func() {
		BeforeEach(func() {
			tokens = []RawToken{
				{Text: "0", Start: 0, End: 1},
				{Text: "0.00", Start: 2, End: 6},
			}
		})

		It("should drop non-positive values silently", func() {
			Expect(normalization.Amounts).To(BeEmpty())
		})

		It("should use the degraded confidence", func() {
			Expect(normalization.Confidence).To(Equal(0.3))
		})
	})

	When("a token fails both parse attempts", func() {
		BeforeEach(func() {
			tokens = []RawToken{
				{Text: "ward", Start: 0, End: 4},
			}
		})

		It("should drop it without error", func() {
			Expect(normalization.Amounts).To(BeEmpty())
		})
	})

	When("no tokens are given", func() {
		BeforeEach(func() {
			tokens = nil
		})

		It("should return an empty list with degraded confidence", func() {
			Expect(normalization.Amounts).To(BeEmpty())
			Expect(normalization.Confidence).To(Equal(0.3))
		})
	})
})

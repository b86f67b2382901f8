package detect

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExtractTokens", func() {
	var (
		text       string
		extraction *Extraction
	)

	JustBeforeEach(func() {
		extraction = ExtractTokens(text)
	})

	When("the text holds grouped and plain numbers", func() {
		BeforeEach(func() {
			text = "Total: Rs 1,200.50, Paid: 1000, Due: 200.50"
		})

		It("should find all three tokens in source order", func() {
			Expect(extraction.RawTokens).To(HaveLen(3))
			Expect(extraction.RawTokens[0].Text).To(Equal("1,200.50"))
			Expect(extraction.RawTokens[1].Text).To(Equal("1000"))
			Expect(extraction.RawTokens[2].Text).To(Equal("200.50"))
		})

		It("should record exact spans into the original text", func() {
			for _, tok := range extraction.RawTokens {
				Expect(tok.Start).To(BeNumerically("<", tok.End))
				Expect(tok.End).To(BeNumerically("<=", len(text)))
				Expect(text[tok.Start:tok.End]).To(Equal(tok.Text))
			}
		})

		It("should carry the currency hint", func() {
			Expect(extraction.CurrencyHint).To(Equal("INR"))
		})

		It("should score confidence from the token count", func() {
			Expect(extraction.Confidence).To(Equal(0.75))
		})
	})

	When("tokens carry OCR confusions", func() {
		BeforeEach(func() {
			text = "Fee l200 then 1O0 then SS items"
		})

		It("should match the confusable-prefixed shape", func() {
			Expect(extraction.RawTokens[0].Text).To(Equal("l200"))
		})

		It("should match the confusable-infixed shape", func() {
			Expect(extraction.RawTokens[1].Text).To(Equal("1O0"))
		})

		It("should match a pure confusable run", func() {
			Expect(extraction.RawTokens[2].Text).To(Equal("SS"))
		})
	})

	When("a digit is embedded inside a word", func() {
		BeforeEach(func() {
			text = "T0tal due soon"
		})

		It("should not match without a word boundary", func() {
			Expect(extraction.RawTokens).To(BeEmpty())
		})
	})

	When("a single confusable letter stands alone", func() {
		BeforeEach(func() {
			text = "marked with S only"
		})

		It("should require runs of at least two", func() {
			Expect(extraction.RawTokens).To(BeEmpty())
		})
	})

	When("many tokens are present", func() {
		BeforeEach(func() {
			text = "1 2 3 4 5 6 7 8 9 10"
		})

		It("should cap confidence at 0.95", func() {
			Expect(extraction.Confidence).To(Equal(0.95))
		})
	})

	When("token counts grow", func() {
		It("should never decrease confidence", func() {
			prev := 0.0
			texts := []string{"1", "1 2", "1 2 3", "1 2 3 4 5 6 7 8"}
			for _, t := range texts {
				c := ExtractTokens(t).Confidence
				Expect(c).To(BeNumerically(">=", prev))
				prev = c
			}
		})

		It("should round to two decimals", func() {
			Expect(ExtractTokens("1").Confidence).To(Equal(0.65))
			Expect(ExtractTokens("1 2 3 4 5").Confidence).To(Equal(0.85))
		})
	})

	When("the text is empty", func() {
		BeforeEach(func() {
			text = ""
		})

		It("should return no tokens", func() {
			Expect(extraction.RawTokens).To(BeEmpty())
		})
	})
})

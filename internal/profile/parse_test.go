package profile

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parseAssessmentJSON", func() {
	var (
		text       string
		assessment *Assessment
		err        error
	)

	JustBeforeEach(func() {
		assessment, err = parseAssessmentJSON(text)
	})

	When("the reply is plain JSON", func() {
		BeforeEach(func() {
			text = `{
				"risk_factors": ["smoking", "high blood pressure"],
				"risk_level": "high",
				"score": 78,
				"rationale": "smoker over 40",
				"recommendations": ["quit smoking"]
			}`
		})

		It("should parse every field", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(assessment.RiskFactors).To(Equal([]string{"smoking", "high blood pressure"}))
			Expect(assessment.RiskLevel).To(Equal("high"))
			Expect(assessment.Score).To(Equal(78.0))
			Expect(assessment.Rationale).To(Equal("smoker over 40"))
			Expect(assessment.Recommendations).To(Equal([]string{"quit smoking"}))
		})
	})

	When("the reply is wrapped in a markdown code block", func() {
		BeforeEach(func() {
			text = "```json\n{\"risk_level\": \"low\", \"score\": 12}\n```"
		})

		It("should strip the fence and parse", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(assessment.RiskLevel).To(Equal("low"))
		})
	})

	When("the model adds prose around the object", func() {
		BeforeEach(func() {
			text = `Based on the profile: {"risk_level": "medium", "score": 44} Hope that helps.`
		})

		It("should keep only the outermost object", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(assessment.RiskLevel).To(Equal("medium"))
		})
	})

	When("the reply omits the risk level", func() {
		BeforeEach(func() {
			text = `{"score": 50}`
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("missing risk_level")))
		})
	})

	When("the reply holds no JSON object", func() {
		BeforeEach(func() {
			text = "I cannot assess this profile."
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("no JSON object found")))
		})
	})

	When("the object is malformed", func() {
		BeforeEach(func() {
			text = `{"risk_level": }`
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("unmarshaling json")))
		})
	})
})

package detect

import (
	"math"
	"regexp"
)

// tokenPattern matches every numeric candidate, bounded by word
// boundaries:
//   - thousands-grouped decimals: 1,200.50
//   - plain digit runs: 1000
//   - OCR-confusable prefixes: l200, S500
//   - OCR-confusable infixes: 1O0, 10O
//   - pure confusable runs of length >= 2: SS, lOI
var tokenPattern = regexp.MustCompile(`\b(?:\d+(?:,\d{3})*(?:\.\d{1,2})?|\d+|[lIOS]\d+|\d+[lIOS]\d*|[lIOS]{2,})\b`)

// ExtractTokens collects every non-overlapping numeric candidate in
// source order with its exact span, plus the document currency hint.
// Confidence grows with the number of candidates and is capped at 0.95.
func ExtractTokens(text string) *Extraction {
	matches := tokenPattern.FindAllStringIndex(text, -1)

	tokens := make([]RawToken, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, RawToken{
			Text:  text[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
		})
	}

	return &Extraction{
		RawTokens:    tokens,
		CurrencyHint: DetectCurrency(text),
		Confidence:   round2(math.Min(0.95, 0.6+0.05*float64(len(tokens)))),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

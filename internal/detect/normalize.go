package detect

import (
	"strconv"
	"strings"
)

// ocrDigitSubstitutions maps letters commonly misread by OCR engines to
// the digits they stand in for.
var ocrDigitSubstitutions = map[rune]rune{
	'O': '0', 'o': '0',
	'l': '1', 'I': '1',
	'Z': '2',
	'S': '5',
	'B': '8',
	'G': '6',
	'T': '7',
	'D': '0',
}

// Normalization confidence is a fixed calibration constant, not a
// measured statistic.
const (
	normalizedConfidence = 0.82
	emptyConfidence      = 0.3
)

// Normalize converts raw tokens to numeric values. Percentages are never
// amounts, so tokens containing '%' are discarded. Tokens that fail a
// direct parse get one retry after OCR digit substitution; tokens that
// fail both, or parse to a non-positive value, are dropped silently.
func Normalize(tokens []RawToken) *Normalization {
	amounts := make([]NormalizedAmount, 0, len(tokens))
	for _, tok := range tokens {
		if strings.Contains(tok.Text, "%") {
			continue
		}

		cleaned := strings.ReplaceAll(tok.Text, ",", "")
		value, ok := parsePositive(cleaned)
		if !ok {
			value, ok = parsePositive(correctDigits(cleaned))
		}
		if !ok {
			continue
		}

		amounts = append(amounts, NormalizedAmount{RawToken: tok, Value: value})
	}

	confidence := emptyConfidence
	if len(amounts) > 0 {
		confidence = normalizedConfidence
	}
	return &Normalization{Amounts: amounts, Confidence: confidence}
}

// correctDigits rewrites each OCR-confusable letter to its digit,
// leaving every other character unchanged.
func correctDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := ocrDigitSubstitutions[r]; ok {
			return d
		}
		return r
	}, s)
}

func parsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

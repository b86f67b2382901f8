package detect

import "regexp"

type currencyPattern struct {
	code string
	re   *regexp.Regexp
}

// currencyPatterns are tested in order and the first match wins, so the
// declaration order is part of the behavior.
var currencyPatterns = []currencyPattern{
	{"INR", regexp.MustCompile(`(?i)INR|Rs\.?|₹|Rupees?`)},
	{"USD", regexp.MustCompile(`(?i)USD|\$|Dollars?`)},
	{"EUR", regexp.MustCompile(`(?i)EUR|€|Euros?`)},
	{"GBP", regexp.MustCompile(`(?i)GBP|£|Pounds?`)},
}

// defaultCurrency is assumed when no currency marker appears in the text.
const defaultCurrency = "INR"

// DetectCurrency scans the document once and returns a single currency
// hint for the whole document, not per amount.
func DetectCurrency(text string) string {
	for _, p := range currencyPatterns {
		if p.re.MatchString(text) {
			return p.code
		}
	}
	return defaultCurrency
}

package detect

import (
	"regexp"
	"strings"
)

type contextPattern struct {
	label string
	re    *regexp.Regexp
}

// contextPatterns are tested in order and the first match wins. The
// order resolves keyword overlaps: "amount payable" must hit total_bill
// before the bare "payable" in due gets a chance.
var contextPatterns = []contextPattern{
	{"total_bill", regexp.MustCompile(`total|grand total|bill amount|amount payable`)},
	{"paid", regexp.MustCompile(`paid|payment|amount paid|received`)},
	{"due", regexp.MustCompile(`due|balance|outstanding|remaining|payable`)},
	{"discount", regexp.MustCompile(`discount|off|reduction|rebate`)},
	{"tax", regexp.MustCompile(`tax|gst|vat|cgst|sgst`)},
	{"consultation", regexp.MustCompile(`consultation|doctor fee|consultation fee`)},
	{"medicine", regexp.MustCompile(`medicine|medication|drugs|pharmacy`)},
	{"lab_test", regexp.MustCompile(`lab|test|investigation|diagnostic`)},
}

// Context window bounds around each token, in bytes of the original text.
const (
	contextBefore = 50
	contextAfter  = 20
)

// Classify assigns each amount a category from the surrounding window of
// the original, uncorrected, lower-cased text. OCR corruption of a
// keyword itself (e.g. "T0tal") therefore defeats classification on
// purpose: the window always reflects what the document actually says.
func Classify(text string, amounts []NormalizedAmount) *Classification {
	if len(amounts) == 0 {
		return &Classification{Amounts: []ClassifiedAmount{}, Confidence: 0.0}
	}

	classified := make([]ClassifiedAmount, 0, len(amounts))
	for _, a := range amounts {
		start := a.Start - contextBefore
		if start < 0 {
			start = 0
		}
		end := a.End + contextAfter
		if end > len(text) {
			end = len(text)
		}
		// Slice before lowercasing: ToLower can shrink multibyte runes,
		// which would knock the stored byte spans out of range.
		window := strings.ToLower(text[start:end])

		label := Unclassified
		for _, p := range contextPatterns {
			if p.re.MatchString(window) {
				label = p.label
				break
			}
		}

		classified = append(classified, ClassifiedAmount{
			Type:  label,
			Value: a.Value,
			Start: a.Start,
			End:   a.End,
			Text:  a.Text,
		})
	}

	return &Classification{Amounts: classified, Confidence: 0.8}
}

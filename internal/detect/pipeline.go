package detect

import "strings"

// Assemble re-slices the original text at each stored span, so the
// caller always sees exactly what appeared in the document regardless of
// any OCR correction applied during normalization.
func Assemble(text, currency string, amounts []ClassifiedAmount) *Output {
	final := make([]FinalAmount, 0, len(amounts))
	for _, a := range amounts {
		final = append(final, FinalAmount{
			Type:   a.Type,
			Value:  a.Value,
			Source: strings.TrimSpace(text[a.Start:a.End]),
		})
	}
	return &Output{Currency: currency, Amounts: final, Status: StatusOK}
}

// Detect runs the full pipeline over one document: extraction,
// normalization, context classification, and final assembly. If
// extraction finds no candidate tokens the pipeline stops there and
// reports no_amounts_found. The returned Result keeps every stage's
// output so callers can explain how an amount was derived.
//
// Detect is a pure function over its input. The pattern tables it reads
// are immutable, so concurrent invocations need no coordination.
func Detect(text string) *Result {
	extraction := ExtractTokens(text)
	if len(extraction.RawTokens) == 0 {
		return &Result{Status: StatusNoAmountsFound, Reason: ReasonTooNoisy}
	}

	normalization := Normalize(extraction.RawTokens)
	classification := Classify(text, normalization.Amounts)
	final := Assemble(text, extraction.CurrencyHint, classification.Amounts)

	return &Result{
		Status:         StatusOK,
		Extraction:     extraction,
		Normalization:  normalization,
		Classification: classification,
		Final:          final,
	}
}

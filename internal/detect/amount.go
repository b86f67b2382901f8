package detect

import "time"

// Pipeline status values.
const (
	StatusOK             = "ok"
	StatusNoAmountsFound = "no_amounts_found"

	// ReasonTooNoisy is reported when extraction finds no numeric candidates.
	ReasonTooNoisy = "document too noisy"

	// Unclassified is assigned when no context pattern matches an amount.
	Unclassified = "unclassified"
)

// RawToken is a numeric-looking substring and its half-open byte span
// [Start, End) in the original document text.
type RawToken struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// NormalizedAmount is a RawToken that survived numeric normalization.
// Value is always > 0; integral values marshal without a fraction.
type NormalizedAmount struct {
	RawToken
	Value float64 `json:"value"`
}

// ClassifiedAmount is a normalized amount with its context category.
// The span and token text are carried through so the assembler can
// re-slice the original document.
type ClassifiedAmount struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Text  string  `json:"text"`
}

// FinalAmount is the caller-facing shape. Source is the untouched
// original substring, not the OCR-corrected token.
type FinalAmount struct {
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	Source string  `json:"source"`
}

// Extraction is the output of the token extraction stage.
type Extraction struct {
	RawTokens    []RawToken `json:"raw_tokens"`
	CurrencyHint string     `json:"currency_hint"`
	Confidence   float64    `json:"confidence"`
}

// Normalization is the output of the normalization stage.
type Normalization struct {
	Amounts    []NormalizedAmount `json:"normalized_amounts"`
	Confidence float64            `json:"normalization_confidence"`
}

// Classification is the output of the context classification stage.
type Classification struct {
	Amounts    []ClassifiedAmount `json:"amounts"`
	Confidence float64            `json:"confidence"`
}

// Output is the final assembled envelope.
type Output struct {
	Currency string        `json:"currency"`
	Amounts  []FinalAmount `json:"amounts"`
	Status   string        `json:"status"`
}

// Result carries every stage's output for one pipeline invocation. When
// no candidate tokens exist, Status and Reason report the guardrail and
// the stage fields stay nil.
type Result struct {
	Status         string          `json:"status,omitempty"`
	Reason         string          `json:"reason,omitempty"`
	Extraction     *Extraction     `json:"extraction,omitempty"`
	Normalization  *Normalization  `json:"normalization,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
	Final          *Output         `json:"final,omitempty"`
}

// NoAmounts reports whether the pipeline short-circuited after extraction.
func (r *Result) NoAmounts() bool {
	return r.Status == StatusNoAmountsFound
}

// Detection is one recorded pipeline invocation.
type Detection struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"` // "text" or "image"
	Text          string    `json:"text"`
	Filename      string    `json:"filename,omitempty"`
	ContentType   string    `json:"content_type,omitempty"`
	OCRConfidence float64   `json:"ocr_confidence,omitempty"`
	Result        *Result   `json:"result"`
	CreatedAt     time.Time `json:"created_at"`
}

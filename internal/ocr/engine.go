package ocr

import "strings"

// Line is one recognized text line with the engine's confidence in it,
// in the range [0, 1].
type Line struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Document is the recognized content of one scanned document.
// Confidence is the average over all lines.
type Document struct {
	Lines      []Line  `json:"lines"`
	Confidence float64 `json:"confidence"`
}

// Text joins the recognized lines with newlines, which is the form the
// detection pipeline consumes.
func (d *Document) Text() string {
	texts := make([]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		texts = append(texts, l.Text)
	}
	return strings.Join(texts, "\n")
}

// LineTexts returns just the recognized text of each line.
func (d *Document) LineTexts() []string {
	texts := make([]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		texts = append(texts, l.Text)
	}
	return texts
}

// Engine defines the interface for OCR operations
type Engine interface {
	// Recognize reads all text in an image/PDF and returns it line by line
	Recognize(imageData []byte, contentType string) (*Document, error)
	// Close closes the engine and releases resources
	Close() error
}

package ocr

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// parseDocumentJSON parses the JSON transcription returned by a vision
// model into a Document.
func parseDocumentJSON(text string) (*Document, error) {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)

	// Models sometimes wrap the JSON in prose; keep only the outermost object
	startIdx := strings.Index(text, "{")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}
	endIdx := strings.LastIndex(text, "}")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON object in response")
	}
	text = text[startIdx : endIdx+1]

	var doc Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	// Drop blank lines and clamp confidences to [0, 1]
	lines := make([]Line, 0, len(doc.Lines))
	var total float64
	for _, l := range doc.Lines {
		l.Text = strings.TrimSpace(l.Text)
		if l.Text == "" {
			continue
		}
		l.Confidence = math.Max(0, math.Min(1, l.Confidence))
		total += l.Confidence
		lines = append(lines, l)
	}
	doc.Lines = lines

	doc.Confidence = 0
	if len(lines) > 0 {
		doc.Confidence = math.Round(total/float64(len(lines))*100) / 100
	}

	return &doc, nil
}

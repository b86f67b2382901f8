package profile

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseAssessmentJSON parses the JSON reply from the LLM.
func parseAssessmentJSON(text string) (*Assessment, error) {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)

	// Keep only the outermost JSON object
	startIdx := strings.Index(text, "{")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}
	endIdx := strings.LastIndex(text, "}")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON object in response")
	}
	text = text[startIdx : endIdx+1]

	var assessment Assessment
	if err := json.Unmarshal([]byte(text), &assessment); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	if assessment.RiskLevel == "" {
		return nil, fmt.Errorf("response is missing risk_level")
	}

	return &assessment, nil
}

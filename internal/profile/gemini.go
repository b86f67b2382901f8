package profile

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// riskPrompt asks for strictly valid JSON so the reply can be parsed
// without any natural-language handling.
const riskPrompt = `You are a health risk profiler. Analyze the input data.
1. Identify risk factors.
2. Classify the overall risk level (Low, Medium, or High).
3. Provide actionable recommendations.
Return strictly valid JSON with the following schema:
{
  "risk_factors": ["factor1", "factor2"],
  "risk_level": "High/Medium/Low",
  "score": 75,
  "rationale": "Short explanation for the risk level",
  "recommendations": ["rec1", "rec2"]
}
Do not include any text before or after the JSON.

Profile: `

// Gemini implements the Profiler interface using Google Gemini
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a new Gemini Profiler instance
func NewGemini(apiKey string, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

// Analyze evaluates a structured health profile. Any failure along the
// way degrades to a well-formed Assessment rather than an error.
func (g *Gemini) Analyze(answers map[string]any) *Assessment {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(riskPrompt+formatProfile(answers)))
	if err != nil {
		slog.Error("Risk profiling call failed", "error", err)
		return degradedAssessment(err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		slog.Error("Risk profiling returned no candidates")
		return degradedAssessment(fmt.Errorf("no response from gemini"))
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText.WriteString(string(text))
		}
	}

	assessment, err := parseAssessmentJSON(responseText.String())
	if err != nil {
		slog.Error("Risk profiling reply was malformed", "error", err)
		return degradedAssessment(err)
	}

	return assessment
}

// Close closes the Gemini client
func (g *Gemini) Close() error {
	return g.client.Close()
}

// formatProfile renders answers as "Key: value" pairs in a stable order.
func formatProfile(answers map[string]any) string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		label := strings.ToUpper(k[:1]) + k[1:]
		pairs = append(pairs, fmt.Sprintf("%s: %v", label, answers[k]))
	}
	return strings.Join(pairs, ", ")
}

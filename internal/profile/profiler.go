package profile

// Assessment is the structured result of a health risk analysis.
type Assessment struct {
	RiskFactors     []string `json:"risk_factors"`
	RiskLevel       string   `json:"risk_level"`
	Score           float64  `json:"score"`
	Rationale       string   `json:"rationale"`
	Recommendations []string `json:"recommendations"`
}

// Profiler defines the interface for LLM-backed risk profiling.
// Implementations never fail: on any internal error they return a
// degraded but well-formed Assessment instead of propagating it.
type Profiler interface {
	// Analyze evaluates a structured health profile
	Analyze(answers map[string]any) *Assessment
	// Close closes the profiler and releases resources
	Close() error
}

// Unavailable is the Profiler used when no LLM credentials are
// configured. It always answers with a configuration-error Assessment.
type Unavailable struct{}

// NewUnavailable creates a Profiler that reports missing configuration
func NewUnavailable() *Unavailable {
	return &Unavailable{}
}

// Analyze returns the configuration-error Assessment
func (u *Unavailable) Analyze(answers map[string]any) *Assessment {
	return &Assessment{
		RiskFactors:     []string{"Configuration Error"},
		RiskLevel:       "Config Missing",
		Rationale:       "No LLM API key is configured for risk profiling",
		Recommendations: []string{"Set the gemini-key flag or GEMINI_API_KEY environment variable"},
	}
}

// Close is a no-op
func (u *Unavailable) Close() error {
	return nil
}

// degradedAssessment is returned when the LLM call or its reply fails.
func degradedAssessment(err error) *Assessment {
	return &Assessment{
		RiskFactors:     []string{"Error processing profile"},
		RiskLevel:       "Unknown",
		Rationale:       "LLM service unreachable or returned a bad reply: " + err.Error(),
		Recommendations: []string{"Consult a real doctor."},
	}
}

package planner

// Config controls the behavior of the Planner.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPlanSkills caps how many gap skills one plan may sequence. A
	// longer gap gets its first MaxPlanSkills skills planned; the rest
	// wait for the next pathway.
	MaxPlanSkills int
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     1024,
		Temperature:   0.3,
		MaxPlanSkills: 8,
	}
}

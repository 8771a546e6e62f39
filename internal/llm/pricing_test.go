package llm

import "testing"

func TestLookupCost(t *testing.T) {
	c := LookupCost("claude-haiku-4-5-20251001")
	if c == nil {
		t.Fatal("expected pricing for default anthropic model")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if got != 6 {
		t.Errorf("cost = %v, want 6", got)
	}

	// Resolved IDs for every provider default must price.
	for _, id := range []string{
		anthropicModels["claude-haiku"],
		openaiModels["gpt-4o-mini"],
		geminiModels["gemini-flash"],
	} {
		if LookupCost(id) == nil {
			t.Errorf("no pricing for default model %q", id)
		}
	}
}

func TestLookupCost_UnknownModel(t *testing.T) {
	if c := LookupCost("meta-llama/llama-3.1-70b-instruct"); c != nil {
		t.Errorf("expected nil for unpriced model, got %+v", c)
	}
}
